package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"student-id-card-generation/internal/batch"
	repo "student-id-card-generation/internal/batch/repository"
)

const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

// CreateBatch inserts a new Batch row and returns the created entity.
func (r *implRepository) CreateBatch(ctx context.Context, opt repo.CreateBatchOptions) (batch.Batch, error) {
	const query = `INSERT INTO batches (name) VALUES ($1) RETURNING id, name`

	var b batch.Batch
	err := r.db.QueryRowContext(ctx, query, opt.Name).Scan(&b.ID, &b.Name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return batch.Batch{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBatch"), err)
		return batch.Batch{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBatch retrieves a single Batch by the provided filters.
// Returns zero-value Batch (ID == 0) when not found.
func (r *implRepository) GetOneBatch(ctx context.Context, opt repo.GetOneBatchOptions) (batch.Batch, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT id, name FROM batches WHERE %s LIMIT 1", mods)

	var b batch.Batch
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name)
	if err == sql.ErrNoRows {
		return batch.Batch{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBatch"), err)
		return batch.Batch{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ListBatches returns every batch ordered by name.
func (r *implRepository) ListBatches(ctx context.Context) ([]batch.Batch, error) {
	const query = `SELECT id, name FROM batches ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBatches"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var batches []batch.Batch
	for rows.Next() {
		var b batch.Batch
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, repo.ErrFailedToList
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBatches"), err)
		return nil, repo.ErrFailedToList
	}
	return batches, nil
}

// DeleteBatch removes a Batch by ID.
func (r *implRepository) DeleteBatch(ctx context.Context, id int64) error {
	const query = `DELETE FROM batches WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return repo.ErrForeignKeyViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBatch"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
