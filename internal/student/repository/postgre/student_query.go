package postgre

import (
	"fmt"
	"strings"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
)

// studentColumns reads a students row aliased s joined with departments aliased d.
const studentColumns = `s.id, s.name,
	COALESCE(s.father_name, ''), COALESCE(s.cnic, ''), COALESCE(s.caste, ''), COALESCE(s.roll_no, ''),
	COALESCE(s.batch, ''), COALESCE(s.department, ''), COALESCE(s.year, ''), COALESCE(s.enrollment, ''),
	COALESCE(s.emergency_contact, ''), COALESCE(s.relation, ''), COALESCE(s.blood_group, ''),
	COALESCE(s.address, ''), COALESCE(s.image_path, ''), COALESCE(s.qr_code, ''),
	COALESCE(d.degree, '')`

const departmentJoin = `LEFT JOIN departments d ON LOWER(s.department) = LOWER(d.name)`

// insertColumns are written in the order returned by fieldArgs.
const insertColumns = `name, father_name, cnic, caste, roll_no, batch, department, year,
	enrollment, emergency_contact, relation, blood_group, address`

// insertValues stores empty optional fields as NULL so unique columns such as
// cnic do not collide on blanks.
const insertValues = `$1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
	NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''),
	NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, '')`

type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.Name,
		&s.FatherName, &s.CNIC, &s.Caste, &s.RollNo,
		&s.Batch, &s.Department, &s.Year, &s.Enrollment,
		&s.EmergencyContact, &s.Relation, &s.BloodGroup,
		&s.Address, &s.ImagePath, &s.QRCode,
		&s.Degree,
	)
	return s, err
}

func fieldArgs(f student.Fields) []any {
	return []any{
		f.Name, f.FatherName, f.CNIC, f.Caste, f.RollNo, f.Batch, f.Department, f.Year,
		f.Enrollment, f.EmergencyContact, f.Relation, f.BloodGroup, f.Address,
	}
}

// buildGetOneQuery builds WHERE clause + args for GetOneStudent.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneStudentOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("s.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.RollNo != "" {
		conditions = append(conditions, fmt.Sprintf("s.roll_no = $%d", idx))
		args = append(args, opt.RollNo)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE + ORDER clause for ListStudents.
func (r *implRepository) buildListQuery(opt repo.ListStudentsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Batch != "" {
		conditions = append(conditions, fmt.Sprintf("s.batch = $%d", idx))
		args = append(args, opt.Batch)
		idx++
	}
	if opt.Department != "" {
		conditions = append(conditions, fmt.Sprintf("s.department = $%d", idx))
		args = append(args, opt.Department)
		idx++
	}

	var parts []string
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY s.name, s.id")
	return strings.Join(parts, " "), args
}
