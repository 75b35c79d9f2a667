package http

import (
	"errors"
	"net/http"

	"student-id-card-generation/internal/assistant"
	"student-id-card-generation/pkg/workflow"
)

const noMessageProvided = "No message provided"

// mapError returns the status and chat-visible text for a failed message.
func (h *handler) mapError(err error) (int, string) {
	if errors.Is(err, assistant.ErrEmptyMessage) {
		return http.StatusBadRequest, noMessageProvided
	}
	return http.StatusInternalServerError, workflow.UserMessage(err)
}
