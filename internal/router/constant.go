package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Routing fallback
const (
	RouterFallbackIntent = IntentBatch
)

var logoutKeywords = []string{
	"logout", "log out", "signout", "sign out",
	"log off", "sign off", "shut", "shut off", "switch off", "unplug", "end session", "home", "home page",
}

var closeChatKeywords = []string{
	"close", "quit", "exit", "leave", "stop", "finish", "close ai",
	"goodbye kazmi", "bye kazmi", "see you kazmi", "see you", "bye", "goodbye", "discontinue",
	"close chat", "exit chat", "end chat", "stop chat",
}

// backPhrases only match when they are the whole message.
var backPhrases = []string{"back", "return", "go back", "main page", "admin page"}

var pageNavigationPatterns = []string{
	"enter page", "open page", "go to page", "navigate to page", "access page",
	"enter a", "open a", "go to a", "enter b", "open b", "go to b",
	"enter c", "open c", "go to c", "enter d", "open d", "go to d",
	"import page", "generate ids page", "manage batches page", "manage departments page",
}

var departmentKeywords = []string{
	"department", "dept",
	"computer science", "electrical", "mechanical", "civil",
	"software", "artificial intelligence", "bba", "mba",
	"bachelor of science", "bachelor of engineering",
	"show department", "list department", "view department", "departments",
	"delete department", "remove department", "del department",
	"add department", "create department", "new department",
	"1", "2", "bs", "bet",
}

var departmentOperations = []string{
	"show department", "list department", "view department", "departments",
	"add department", "create department", "new department",
	"delete department", "remove department", "del department",
	"1", "2", "bs", "bet",
}

var batchKeywords = []string{
	"batch", "bscs", "mscs", "bsit", "bsse",
	"show batch", "list batch", "view batch",
	"delete batch", "remove batch", "del batch",
	"add batch", "create batch", "new batch",
}

var batchOperations = []string{
	"show batch", "list batch", "view batch", "batches",
	"add batch", "create batch", "new batch",
	"delete batch", "remove batch", "del batch",
}
