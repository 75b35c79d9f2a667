package usecase

import (
	"context"
	"errors"
	"strings"

	"student-id-card-generation/internal/batch"
	repo "student-id-card-generation/internal/batch/repository"
)

// Create adds a batch after checking the name is free (case-insensitive).
func (uc *implUseCase) Create(ctx context.Context, input batch.CreateInput) (batch.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return batch.CreateOutput{}, batch.ErrNameRequired
	}

	existing, err := uc.repo.GetOneBatch(ctx, repo.GetOneBatchOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneBatch: %v", err)
		return batch.CreateOutput{}, err
	}
	if existing.ID != 0 {
		return batch.CreateOutput{}, batch.ErrDuplicateName
	}

	b, err := uc.repo.CreateBatch(ctx, repo.CreateBatchOptions{Name: name})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return batch.CreateOutput{}, batch.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "uc.Create CreateBatch: %v", err)
		return batch.CreateOutput{}, err
	}
	return batch.CreateOutput{Batch: b}, nil
}

// List returns every batch.
func (uc *implUseCase) List(ctx context.Context) (batch.ListOutput, error) {
	batches, err := uc.repo.ListBatches(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBatches: %v", err)
		return batch.ListOutput{}, err
	}
	return batch.ListOutput{Batches: batches}, nil
}

// Delete removes a batch. Returns ErrBatchNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneBatch(ctx, repo.GetOneBatchOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneBatch: %v", err)
		return err
	}
	if existing.ID == 0 {
		return batch.ErrBatchNotFound
	}
	if err := uc.repo.DeleteBatch(ctx, id); err != nil {
		if errors.Is(err, repo.ErrForeignKeyViolation) {
			return batch.ErrBatchInUse
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteBatch: %v", err)
		return err
	}
	return nil
}

// Missing returns the names that have no matching batch, in input order.
func (uc *implUseCase) Missing(ctx context.Context, names []string) ([]string, error) {
	var missing []string
	for _, name := range names {
		b, err := uc.repo.GetOneBatch(ctx, repo.GetOneBatchOptions{Name: name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Missing GetOneBatch: %v", err)
			return nil, err
		}
		if b.ID == 0 {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
