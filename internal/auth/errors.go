package auth

import "errors"

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrFieldsRequired     = errors.New("name, email and password are required")
	ErrCredentialsMissing = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
