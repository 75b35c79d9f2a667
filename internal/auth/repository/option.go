package repository

import "student-id-card-generation/internal/model"

type CreateUserOptions struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         model.Role
}

// GetOneUserOptions filters by case-insensitive email and/or role.
type GetOneUserOptions struct {
	Email string
	Role  model.Role
}
