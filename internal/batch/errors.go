package batch

import "errors"

var (
	ErrBatchNotFound = errors.New("batch not found")
	ErrDuplicateName = errors.New("batch already exists")
	ErrNameRequired  = errors.New("batch name is required")
	ErrBatchInUse    = errors.New("batch is still referenced")
)
