package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert user")
	ErrFailedToGet     = errors.New("failed to get user")
	ErrFailedToCount   = errors.New("failed to count records")
	ErrUniqueViolation = errors.New("user email already exists")
)
