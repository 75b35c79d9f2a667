package assistant

import (
	"context"
	"encoding/json"

	"student-id-card-generation/pkg/workflow"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage classifies an admin chat message and answers it, either
	// locally or through the matching workflow. Operation-workflow failures are
	// returned as *workflow.Error; page-navigation failures are folded into the reply.
	HandleMessage(ctx context.Context, input MessageInput) (MessageOutput, error)
}

// Workflow sends a message to an external workflow and returns its raw JSON reply.
type Workflow interface {
	Send(ctx context.Context, kind workflow.Kind, message string) (json.RawMessage, error)
}
