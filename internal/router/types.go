package router

// Intent is the classified purpose of an admin chat message.
type Intent string

const (
	IntentLogout         Intent = "logout"
	IntentCloseChat      Intent = "close_chat"
	IntentBackNavigation Intent = "back_navigation"
	IntentPageNavigation Intent = "page_navigation"
	IntentDepartment     Intent = "department"
	IntentBatch          Intent = "batch"
)

// ShortCircuits reports whether the intent is answered locally without a workflow call.
func (i Intent) ShortCircuits() bool {
	switch i {
	case IntentLogout, IntentCloseChat, IntentBackNavigation:
		return true
	default:
		return false
	}
}

// Workflow identifies which external workflow handles an intent.
type Workflow string

const (
	WorkflowDepartment     Workflow = "department"
	WorkflowBatch          Workflow = "batch"
	WorkflowPageNavigation Workflow = "page_navigation"
)

// RouterOutput is the result of classifying one message.
type RouterOutput struct {
	Intent   Intent
	Workflow Workflow
	// Matched is the keyword that decided the intent, empty for the default.
	Matched string
}
