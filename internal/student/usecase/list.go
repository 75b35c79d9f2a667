package usecase

import (
	"context"
	"strings"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
)

// List returns students filtered by exact batch and department names.
func (uc *implUseCase) List(ctx context.Context, input student.ListInput) (student.ListOutput, error) {
	students, err := uc.repo.ListStudents(ctx, repo.ListStudentsOptions{
		Batch:      strings.TrimSpace(input.Batch),
		Department: strings.TrimSpace(input.Department),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListStudents: %v", err)
		return student.ListOutput{}, err
	}
	return student.ListOutput{Students: students}, nil
}

// Detail retrieves a single student. Returns ErrStudentNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (student.DetailOutput, error) {
	s, err := uc.getByID(ctx, id)
	if err != nil {
		return student.DetailOutput{}, err
	}
	return student.DetailOutput{Student: s}, nil
}

func (uc *implUseCase) getByID(ctx context.Context, id int64) (student.Student, error) {
	s, err := uc.repo.GetOneStudent(ctx, repo.GetOneStudentOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getByID GetOneStudent: %v", err)
		return student.Student{}, err
	}
	if s.ID == 0 {
		return student.Student{}, student.ErrStudentNotFound
	}
	return s, nil
}
