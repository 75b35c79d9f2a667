package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert student")
	ErrFailedToGet     = errors.New("failed to get student")
	ErrFailedToList    = errors.New("failed to list students")
	ErrFailedToUpdate  = errors.New("failed to update student")
	ErrFailedToDelete  = errors.New("failed to delete student")
	ErrFailedToImport  = errors.New("failed to import students")
	ErrUniqueViolation = errors.New("student roll number or cnic already exists")
)
