package usecase

import (
	"student-id-card-generation/internal/assistant"
	"student-id-card-generation/internal/router"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
)

type implUseCase struct {
	l        log.Logger
	router   router.Router
	workflow assistant.Workflow
	metrics  *metrics.Metrics
}

// New creates the assistant UseCase. metrics may be nil.
func New(l log.Logger, r router.Router, wf assistant.Workflow, m *metrics.Metrics) assistant.UseCase {
	return &implUseCase{
		l:        l,
		router:   r,
		workflow: wf,
		metrics:  m,
	}
}
