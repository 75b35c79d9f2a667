package repository

import "errors"

var (
	ErrFailedToInsert      = errors.New("failed to insert department")
	ErrFailedToGet         = errors.New("failed to get department")
	ErrFailedToList        = errors.New("failed to list departments")
	ErrFailedToDelete      = errors.New("failed to delete department")
	ErrUniqueViolation     = errors.New("department name already exists")
	ErrForeignKeyViolation = errors.New("department is still referenced")
)
