package http

import (
	"student-id-card-generation/internal/assistant"
	"student-id-card-generation/pkg/log"
)

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the chat assistant.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
