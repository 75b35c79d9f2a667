package repository

import (
	"context"

	"student-id-card-generation/internal/batch"
)

// Repository is the data store for batches.
type Repository interface {
	CreateBatch(ctx context.Context, opt CreateBatchOptions) (batch.Batch, error)
	GetOneBatch(ctx context.Context, opt GetOneBatchOptions) (batch.Batch, error)
	ListBatches(ctx context.Context) ([]batch.Batch, error)
	DeleteBatch(ctx context.Context, id int64) error
}
