package assistant

import "student-id-card-generation/internal/router"

// Reply is the normalized answer returned to the chat widget.
// RedirectURL is nil when the reply carries no redirect at all, and points
// to "" when the redirect is present but empty.
type Reply struct {
	Message     string
	RedirectURL *string
	Action      string
	// Delay is a client-side hint in milliseconds before acting on the reply.
	Delay int
}

// Fixed actions understood by the chat widget.
const (
	ActionLogout    = "logout"
	ActionCloseChat = "close_chat"
	ActionRedirect  = "redirect"
	ActionMessage   = "message"
)

// --- UseCase Inputs ---

type MessageInput struct {
	Message string
}

// --- UseCase Outputs ---

type MessageOutput struct {
	Intent router.Intent
	Reply  Reply
}
