package workflow

import "time"

// Kind names one of the workflow endpoints.
type Kind string

const (
	KindDepartment     Kind = "department"
	KindBatch          Kind = "batch"
	KindPageNavigation Kind = "page_navigation"
)

// DefaultTimeout bounds every workflow call.
const DefaultTimeout = 15 * time.Second

// Config holds the webhook URL per workflow kind.
type Config struct {
	DepartmentURL     string
	BatchURL          string
	PageNavigationURL string
	Timeout           time.Duration
}

// Request is the payload posted to a workflow webhook.
type Request struct {
	Message string `json:"message"`
}
