package router

import (
	"context"

	"student-id-card-generation/pkg/log"
)

// Router classifies admin chat messages into intents.
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter is an ordered predicate chain over fixed keyword tables.
type KeywordRouter struct {
	l log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter.
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
