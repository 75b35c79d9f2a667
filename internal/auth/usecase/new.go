package usecase

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"student-id-card-generation/internal/auth"
	"student-id-card-generation/internal/auth/repository"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/session"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	sessions   session.Store
	bcryptCost int
	newID      func() string
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, sessions session.Store) auth.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		sessions:   sessions,
		bcryptCost: bcrypt.DefaultCost,
		newID:      uuid.NewString,
	}
}
