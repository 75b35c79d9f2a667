package workflow

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed workflow call.
type ErrorKind string

const (
	ErrorKindStatus   ErrorKind = "status"
	ErrorKindConnect  ErrorKind = "connect"
	ErrorKindTimeout  ErrorKind = "timeout"
	ErrorKindRequest  ErrorKind = "request"
	ErrorKindInternal ErrorKind = "internal"
)

// User-facing texts per error kind.
const (
	MsgStatus   = "Workflow returned an error. Please try again."
	MsgConnect  = "Cannot connect to workflow engine. Please try again later."
	MsgTimeout  = "Request timeout. Please try again."
	MsgInternal = "An unexpected error occurred. Please try again."
)

var ErrUnknownWorkflow = errors.New("unknown workflow")

// Error is returned by Client.Send for every failed call.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("workflow %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("workflow %s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage is the text shown to the chat user for this failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case ErrorKindStatus:
		return MsgStatus
	case ErrorKindConnect:
		return MsgConnect
	case ErrorKindTimeout:
		return MsgTimeout
	case ErrorKindRequest:
		return fmt.Sprintf("Workflow error: %v", e.Err)
	default:
		return MsgInternal
	}
}

// UserMessage maps any error onto the chat-facing text.
func UserMessage(err error) string {
	var wfErr *Error
	if errors.As(err, &wfErr) {
		return wfErr.UserMessage()
	}
	return MsgInternal
}
