package http

import (
	"student-id-card-generation/internal/batch"
	"student-id-card-generation/pkg/log"
)

type handler struct {
	l  log.Logger
	uc batch.UseCase
}

// New creates a new HTTP handler for the batch domain.
func New(l log.Logger, uc batch.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
