package usecase

import (
	"student-id-card-generation/internal/department"
	"student-id-card-generation/internal/department/repository"
	"student-id-card-generation/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new department UseCase implementation.
func New(repo repository.Repository, l log.Logger) department.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
