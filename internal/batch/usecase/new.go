package usecase

import (
	"student-id-card-generation/internal/batch"
	"student-id-card-generation/internal/batch/repository"
	"student-id-card-generation/pkg/log"
)

// implUseCase is the private implementation of batch.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new batch UseCase implementation.
func New(repo repository.Repository, l log.Logger) batch.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
