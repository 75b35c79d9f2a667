package usecase

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
)

// Update rewrites a student. A new photo replaces and deletes the old one.
func (uc *implUseCase) Update(ctx context.Context, input student.UpdateInput) (student.UpdateOutput, error) {
	fields := uc.trimFields(input.Fields)
	if err := uc.validateFields(fields); err != nil {
		return student.UpdateOutput{}, err
	}

	existing, err := uc.getByID(ctx, input.ID)
	if err != nil {
		return student.UpdateOutput{}, err
	}

	var imagePath string
	if hasImage(input.Image) {
		key, err := uc.saveStudentImage(ctx, fields, *input.Image)
		if err != nil {
			return student.UpdateOutput{}, err
		}
		imagePath = key
	}

	s, err := uc.repo.UpdateStudent(ctx, repo.UpdateStudentOptions{
		ID:        input.ID,
		Fields:    fields,
		ImagePath: imagePath,
	})
	if err != nil {
		_ = uc.removeFile(ctx, imagePath)
		if errors.Is(err, repo.ErrUniqueViolation) {
			return student.UpdateOutput{}, student.ErrDuplicateStudent
		}
		uc.l.Errorf(ctx, "uc.Update UpdateStudent: %v", err)
		return student.UpdateOutput{}, err
	}
	if s.ID == 0 {
		_ = uc.removeFile(ctx, imagePath)
		return student.UpdateOutput{}, student.ErrStudentNotFound
	}

	if imagePath != "" && existing.ImagePath != "" && existing.ImagePath != imagePath {
		_ = uc.removeFile(ctx, existing.ImagePath)
	}
	return student.UpdateOutput{Student: s}, nil
}

// Delete removes a student together with the stored photo and QR code.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.getByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteStudent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteStudent: %v", err)
		return err
	}

	var result *multierror.Error
	for _, key := range []string{existing.ImagePath, existing.QRCode} {
		if err := uc.removeFile(ctx, key); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		uc.l.Warnf(ctx, "uc.Delete: student %d removed, files left behind: %v", id, err)
	}
	return nil
}
