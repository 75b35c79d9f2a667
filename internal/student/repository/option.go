package repository

import "student-id-card-generation/internal/student"

// CreateStudentOptions holds parameters for inserting a new Student.
// An empty ImagePath is stored as NULL.
type CreateStudentOptions struct {
	Fields    student.Fields
	ImagePath string
}

// GetOneStudentOptions holds filters for fetching a single Student. Non-zero fields are ANDed.
type GetOneStudentOptions struct {
	ID     int64
	RollNo string
}

// ListStudentsOptions filters by exact batch and department names. Empty means any.
type ListStudentsOptions struct {
	Batch      string
	Department string
}

// UpdateStudentOptions replaces every field of a student. An empty ImagePath
// keeps the stored image.
type UpdateStudentOptions struct {
	ID        int64
	Fields    student.Fields
	ImagePath string
}

// UpsertStudentOptions is one imported row. Image and QR code are never touched.
type UpsertStudentOptions struct {
	Fields student.Fields
}
