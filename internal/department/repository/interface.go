package repository

import (
	"context"

	"student-id-card-generation/internal/department"
)

// Repository is the data store for departments.
type Repository interface {
	CreateDepartment(ctx context.Context, opt CreateDepartmentOptions) (department.Department, error)
	GetOneDepartment(ctx context.Context, opt GetOneDepartmentOptions) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	DeleteDepartment(ctx context.Context, id int64) error
}
