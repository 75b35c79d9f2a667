package repository

import (
	"context"

	"student-id-card-generation/internal/student"
)

// Repository is the data store for students.
type Repository interface {
	CreateStudent(ctx context.Context, opt CreateStudentOptions) (student.Student, error)
	// GetOneStudent returns a zero-value Student when nothing matches.
	GetOneStudent(ctx context.Context, opt GetOneStudentOptions) (student.Student, error)
	ListStudents(ctx context.Context, opt ListStudentsOptions) ([]student.Student, error)
	UpdateStudent(ctx context.Context, opt UpdateStudentOptions) (student.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	// ImportStudents upserts every row by roll number in one transaction.
	ImportStudents(ctx context.Context, opts []UpsertStudentOptions) (inserted, updated int, err error)
	SetImagePath(ctx context.Context, id int64, imagePath string) error
	SetQRCode(ctx context.Context, id int64, qrCode string) error
}
