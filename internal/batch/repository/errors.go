package repository

import "errors"

var (
	ErrFailedToInsert      = errors.New("failed to insert batch")
	ErrFailedToGet         = errors.New("failed to get batch")
	ErrFailedToList        = errors.New("failed to list batches")
	ErrFailedToDelete      = errors.New("failed to delete batch")
	ErrUniqueViolation     = errors.New("batch name already exists")
	ErrForeignKeyViolation = errors.New("batch is still referenced")
)
