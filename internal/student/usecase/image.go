package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
	"student-id-card-generation/pkg/storage"
)

// hasImage reports whether the browser actually attached a file.
func hasImage(img *student.Image) bool {
	return img != nil && img.Content != nil && img.Filename != "" && img.Filename != "undefined"
}

// readImage checks type and size and buffers the upload.
func (uc *implUseCase) readImage(img student.Image) ([]byte, error) {
	if !uc.allowedImage(img.Filename) {
		return nil, student.ErrUnsupportedImageType
	}
	if uc.cfg.MaxImageBytes > 0 && img.Size > uc.cfg.MaxImageBytes {
		return nil, student.ErrImageTooLarge
	}

	r := img.Content
	if uc.cfg.MaxImageBytes > 0 {
		r = io.LimitReader(r, uc.cfg.MaxImageBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if uc.cfg.MaxImageBytes > 0 && int64(len(data)) > uc.cfg.MaxImageBytes {
		return nil, student.ErrImageTooLarge
	}
	return data, nil
}

// studentImageKey names a registration photo {roll}_{name}_{unix}.{ext}.
func (uc *implUseCase) studentImageKey(f student.Fields, filename string) string {
	name := fmt.Sprintf("%s_%s_%d.%s",
		f.RollNo, strings.ReplaceAll(f.Name, " ", "_"), uc.now().Unix(), imageExt(filename))
	return path.Join(uc.cfg.StudentImageDir, secureFilename(name))
}

// saveStudentImage validates and stores a registration photo and returns its key.
func (uc *implUseCase) saveStudentImage(ctx context.Context, f student.Fields, img student.Image) (string, error) {
	data, err := uc.readImage(img)
	if err != nil {
		return "", err
	}
	key := uc.studentImageKey(f, img.Filename)
	if err := uc.storage.Save(ctx, key, bytes.NewReader(data)); err != nil {
		uc.l.Errorf(ctx, "uc.saveStudentImage storage.Save %s: %v", key, err)
		return "", err
	}
	return key, nil
}

// removeFile deletes a stored file, logging instead of failing.
func (uc *implUseCase) removeFile(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := uc.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		uc.l.Warnf(ctx, "uc.removeFile %s: %v", key, err)
		return err
	}
	return nil
}

// UploadImage replaces a student's photo with an admin upload.
func (uc *implUseCase) UploadImage(ctx context.Context, input student.UploadImageInput) (student.UploadImageOutput, error) {
	if !hasImage(&input.Image) {
		return student.UploadImageOutput{}, student.ErrNoFile
	}

	existing, err := uc.repo.GetOneStudent(ctx, repo.GetOneStudentOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UploadImage GetOneStudent: %v", err)
		return student.UploadImageOutput{}, err
	}
	if existing.ID == 0 {
		return student.UploadImageOutput{}, student.ErrStudentNotFound
	}

	data, err := uc.readImage(input.Image)
	if err != nil {
		return student.UploadImageOutput{}, err
	}

	key := path.Join(uc.cfg.UploadedImageDir, secureFilename(fmt.Sprintf("%d_%s", input.ID, input.Image.Filename)))
	if err := uc.storage.Save(ctx, key, bytes.NewReader(data)); err != nil {
		uc.l.Errorf(ctx, "uc.UploadImage storage.Save %s: %v", key, err)
		return student.UploadImageOutput{}, err
	}
	if err := uc.repo.SetImagePath(ctx, input.ID, key); err != nil {
		uc.l.Errorf(ctx, "uc.UploadImage SetImagePath: %v", err)
		return student.UploadImageOutput{}, err
	}
	if existing.ImagePath != "" && existing.ImagePath != key {
		_ = uc.removeFile(ctx, existing.ImagePath)
	}

	return student.UploadImageOutput{ImagePath: key, ImageURL: uc.publicURL(key)}, nil
}
