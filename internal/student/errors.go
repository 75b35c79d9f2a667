package student

import (
	"errors"
	"strings"
)

var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrMissingRequiredFields = errors.New("please fill all required fields")
	ErrDuplicateRollNo       = errors.New("student with this roll number already exists")
	ErrDuplicateStudent      = errors.New("student with this roll number or CNIC already exists")
	ErrNoFile                = errors.New("no file provided")
	ErrUnsupportedImageType  = errors.New("unsupported image type")
	ErrImageTooLarge         = errors.New("file size too large, maximum 2MB allowed")
	ErrUnsupportedImportFile = errors.New("unsupported file type, provide CSV or Excel (.xlsx)")
	ErrImportFileTooLarge    = errors.New("import file is too large")
	ErrInvalidImportFile     = errors.New("error processing file")
	ErrMissingColumns        = errors.New("file must contain columns: name, father_name, cnic, caste, roll_no, batch, department")
)

// MissingReferencesError stops an import whose rows name unknown batches or departments.
type MissingReferencesError struct {
	Batches     []string
	Departments []string
}

func (e *MissingReferencesError) Error() string {
	var parts []string
	if len(e.Batches) > 0 {
		parts = append(parts, "Missing batches: "+strings.Join(e.Batches, ", "))
	}
	if len(e.Departments) > 0 {
		parts = append(parts, "Missing departments: "+strings.Join(e.Departments, ", "))
	}
	return "⚠️ Import stopped. " + strings.Join(parts, " | ")
}
