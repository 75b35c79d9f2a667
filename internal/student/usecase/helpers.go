package usecase

import (
	"path"
	"regexp"
	"strings"

	"student-id-card-generation/internal/student"
)

// trimFields returns f with every value trimmed.
func (uc *implUseCase) trimFields(f student.Fields) student.Fields {
	return student.Fields{
		Name:             strings.TrimSpace(f.Name),
		FatherName:       strings.TrimSpace(f.FatherName),
		CNIC:             strings.TrimSpace(f.CNIC),
		Caste:            strings.TrimSpace(f.Caste),
		RollNo:           strings.TrimSpace(f.RollNo),
		Batch:            strings.TrimSpace(f.Batch),
		Department:       strings.TrimSpace(f.Department),
		Year:             strings.TrimSpace(f.Year),
		Enrollment:       strings.TrimSpace(f.Enrollment),
		EmergencyContact: strings.TrimSpace(f.EmergencyContact),
		Relation:         strings.TrimSpace(f.Relation),
		BloodGroup:       strings.TrimSpace(f.BloodGroup),
		Address:          strings.TrimSpace(f.Address),
	}
}

// validateFields requires name, father name, CNIC, caste, roll number, batch,
// department and year.
func (uc *implUseCase) validateFields(f student.Fields) error {
	for _, v := range []string{f.Name, f.FatherName, f.CNIC, f.Caste, f.RollNo, f.Batch, f.Department, f.Year} {
		if v == "" {
			return student.ErrMissingRequiredFields
		}
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// secureFilename reduces name to a flat ASCII filename safe to use as a storage key segment.
func secureFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// imageExt returns the lower-cased extension of filename without the dot.
func imageExt(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func (uc *implUseCase) allowedImage(filename string) bool {
	ext := imageExt(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range uc.cfg.AllowedImageExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// publicURL resolves a stored key, or "" when there is none.
func (uc *implUseCase) publicURL(key string) string {
	if key == "" {
		return ""
	}
	return uc.storage.URL(key)
}
