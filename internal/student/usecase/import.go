package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
	"student-id-card-generation/pkg/spreadsheet"
)

var requiredImportColumns = []string{"name", "father_name", "cnic", "caste", "roll_no", "batch", "department"}

// Import upserts students from a CSV or XLSX sheet. Every batch and department
// named in the sheet must exist, otherwise nothing is written.
func (uc *implUseCase) Import(ctx context.Context, input student.ImportInput) (student.ImportOutput, error) {
	if input.Content == nil || input.Filename == "" {
		return student.ImportOutput{}, student.ErrNoFile
	}
	if uc.cfg.MaxImportFileSize > 0 && input.Size > uc.cfg.MaxImportFileSize {
		return student.ImportOutput{}, student.ErrImportFileTooLarge
	}

	table, err := spreadsheet.Read(input.Filename, input.Content)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrUnsupportedFormat) {
			return student.ImportOutput{}, student.ErrUnsupportedImportFile
		}
		uc.l.Warnf(ctx, "uc.Import spreadsheet.Read %s: %v", input.Filename, err)
		return student.ImportOutput{}, fmt.Errorf("%w: %v", student.ErrInvalidImportFile, err)
	}
	if missing := table.MissingColumns(requiredImportColumns); len(missing) > 0 {
		return student.ImportOutput{}, student.ErrMissingColumns
	}

	if err := uc.checkReferences(ctx, table.Rows); err != nil {
		return student.ImportOutput{}, err
	}

	var out student.ImportOutput
	opts := make([]repo.UpsertStudentOptions, 0, len(table.Rows))
	for _, row := range table.Rows {
		fields := rowFields(row)
		if fields.Name == "" || fields.RollNo == "" {
			out.Skipped++
			continue
		}
		opts = append(opts, repo.UpsertStudentOptions{Fields: fields})
	}

	if len(opts) > 0 {
		inserted, updated, err := uc.repo.ImportStudents(ctx, opts)
		if err != nil {
			if errors.Is(err, repo.ErrUniqueViolation) {
				return student.ImportOutput{}, student.ErrDuplicateStudent
			}
			uc.l.Errorf(ctx, "uc.Import ImportStudents: %v", err)
			return student.ImportOutput{}, err
		}
		out.Inserted, out.Updated = inserted, updated
	}

	uc.metrics.AddImported(out.Inserted, out.Updated, out.Skipped)
	uc.l.Infof(ctx, "uc.Import %s: inserted=%d updated=%d skipped=%d",
		input.Filename, out.Inserted, out.Updated, out.Skipped)
	return out, nil
}

// checkReferences compares the distinct batch and department names of rows,
// lower-cased, against the stored ones.
func (uc *implUseCase) checkReferences(ctx context.Context, rows []spreadsheet.Row) error {
	batches := distinctLower(rows, "batch")
	departments := distinctLower(rows, "department")

	missingBatches, err := uc.batchUC.Missing(ctx, batches)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkReferences batchUC.Missing: %v", err)
		return err
	}
	missingDepartments, err := uc.departmentUC.Missing(ctx, departments)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkReferences departmentUC.Missing: %v", err)
		return err
	}

	if len(missingBatches) > 0 || len(missingDepartments) > 0 {
		return &student.MissingReferencesError{
			Batches:     missingBatches,
			Departments: missingDepartments,
		}
	}
	return nil
}

func distinctLower(rows []spreadsheet.Row, column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		v := strings.ToLower(strings.TrimSpace(row.Get(column)))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func rowFields(row spreadsheet.Row) student.Fields {
	get := func(column string) string { return strings.TrimSpace(row.Get(column)) }
	return student.Fields{
		Name:             get("name"),
		FatherName:       get("father_name"),
		CNIC:             get("cnic"),
		Caste:            get("caste"),
		RollNo:           get("roll_no"),
		Batch:            get("batch"),
		Department:       get("department"),
		Year:             get("year"),
		Enrollment:       get("enrollment"),
		EmergencyContact: get("emergency_contact"),
		Relation:         get("relation"),
		BloodGroup:       get("blood_group"),
		Address:          get("address"),
	}
}
