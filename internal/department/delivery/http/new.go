package http

import (
	"student-id-card-generation/internal/department"
	"student-id-card-generation/pkg/log"
)

type handler struct {
	l  log.Logger
	uc department.UseCase
}

// New creates a new HTTP handler for the department domain.
func New(l log.Logger, uc department.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
