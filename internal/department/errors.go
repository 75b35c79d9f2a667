package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDuplicateName      = errors.New("department already exists")
	ErrNameRequired       = errors.New("department name and degree are required")
	ErrDepartmentInUse    = errors.New("department is still referenced")
)
