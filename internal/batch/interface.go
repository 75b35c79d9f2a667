package batch

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Delete(ctx context.Context, id int64) error
	// Missing returns the names that have no matching batch (case-insensitive).
	Missing(ctx context.Context, names []string) ([]string, error)
}
