package repository

type CreateDepartmentOptions struct {
	Name   string
	Degree string
}

// GetOneDepartmentOptions filters a single lookup. Name matches case-insensitively.
type GetOneDepartmentOptions struct {
	ID   int64
	Name string
}
