package repository

import (
	"context"

	"student-id-card-generation/internal/auth"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	// GetOneUser returns a zero User when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
	CountRecords(ctx context.Context) (auth.Counts, error)
}
