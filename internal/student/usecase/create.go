package usecase

import (
	"context"
	"errors"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
)

// Register stores a self-registered student and the optional photo.
func (uc *implUseCase) Register(ctx context.Context, input student.RegisterInput) (student.CreateOutput, error) {
	fields := uc.trimFields(input.Fields)
	if err := uc.validateFields(fields); err != nil {
		return student.CreateOutput{}, err
	}
	if err := uc.ensureRollNoFree(ctx, fields.RollNo); err != nil {
		return student.CreateOutput{}, err
	}

	var imagePath string
	if hasImage(input.Image) {
		key, err := uc.saveStudentImage(ctx, fields, *input.Image)
		if err != nil {
			return student.CreateOutput{}, err
		}
		imagePath = key
	}

	s, err := uc.create(ctx, fields, imagePath)
	if err != nil {
		_ = uc.removeFile(ctx, imagePath)
		return student.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Register: student %s registered", s.RollNo)
	return student.CreateOutput{Student: s}, nil
}

// Create stores a student entered manually by an admin.
func (uc *implUseCase) Create(ctx context.Context, input student.CreateInput) (student.CreateOutput, error) {
	fields := uc.trimFields(input.Fields)
	if err := uc.validateFields(fields); err != nil {
		return student.CreateOutput{}, err
	}
	if err := uc.ensureRollNoFree(ctx, fields.RollNo); err != nil {
		return student.CreateOutput{}, err
	}

	s, err := uc.create(ctx, fields, "")
	if err != nil {
		return student.CreateOutput{}, err
	}
	return student.CreateOutput{Student: s}, nil
}

func (uc *implUseCase) ensureRollNoFree(ctx context.Context, rollNo string) error {
	existing, err := uc.repo.GetOneStudent(ctx, repo.GetOneStudentOptions{RollNo: rollNo})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureRollNoFree GetOneStudent: %v", err)
		return err
	}
	if existing.ID != 0 {
		return student.ErrDuplicateRollNo
	}
	return nil
}

func (uc *implUseCase) create(ctx context.Context, fields student.Fields, imagePath string) (student.Student, error) {
	s, err := uc.repo.CreateStudent(ctx, repo.CreateStudentOptions{Fields: fields, ImagePath: imagePath})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return student.Student{}, student.ErrDuplicateStudent
		}
		uc.l.Errorf(ctx, "uc.create CreateStudent: %v", err)
		return student.Student{}, err
	}
	return s, nil
}
