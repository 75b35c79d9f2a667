package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"student-id-card-generation/internal/student"
)

const qrTemplate = `STUDENT ID CARD
Benazir Bhutto Shaheed University

Name: %s
Roll No: %s
Department: %s
Degree: %s
Batch: %s
Year: %s
Father Name: %s

If found, please return to university.`

// qrText is the payload encoded into a student's QR code.
func qrText(s student.Student) string {
	degree := s.Degree
	if degree == "" {
		degree = "N/A"
	}
	return fmt.Sprintf(qrTemplate, s.Name, s.RollNo, s.Department, degree, s.Batch, s.Year, s.FatherName)
}

func (uc *implUseCase) qrKey(id int64) string {
	return path.Join(uc.cfg.QRCodeDir, fmt.Sprintf("qr_%d.png", id))
}

// Generate renders a QR code for every matching student and records where it is stored.
func (uc *implUseCase) Generate(ctx context.Context, input student.GenerateInput) (student.GenerateOutput, error) {
	listed, err := uc.List(ctx, student.ListInput(input))
	if err != nil {
		return student.GenerateOutput{}, err
	}

	students := listed.Students
	for i := range students {
		s := &students[i]

		png, err := uc.qr.PNG(qrText(*s))
		if err != nil {
			uc.l.Errorf(ctx, "uc.Generate qr.PNG student %d: %v", s.ID, err)
			return student.GenerateOutput{}, err
		}

		key := uc.qrKey(s.ID)
		if err := uc.storage.Save(ctx, key, bytes.NewReader(png)); err != nil {
			uc.l.Errorf(ctx, "uc.Generate storage.Save %s: %v", key, err)
			return student.GenerateOutput{}, err
		}
		if err := uc.repo.SetQRCode(ctx, s.ID, key); err != nil {
			uc.l.Errorf(ctx, "uc.Generate SetQRCode: %v", err)
			return student.GenerateOutput{}, err
		}
		s.QRCode = key
	}

	uc.metrics.IncQRCodes(len(students))
	return student.GenerateOutput{Students: students}, nil
}

// IDCard returns the printable card data for a student.
func (uc *implUseCase) IDCard(ctx context.Context, id int64) (student.IDCardOutput, error) {
	s, err := uc.getByID(ctx, id)
	if err != nil {
		return student.IDCardOutput{}, err
	}

	degree := s.Degree
	if degree == "" {
		degree = student.DefaultDegree
	}
	return student.IDCardOutput{Card: student.IDCard{
		Student:   s,
		Degree:    degree,
		ImageURL:  uc.publicURL(s.ImagePath),
		QRCodeURL: uc.publicURL(s.QRCode),
	}}, nil
}
