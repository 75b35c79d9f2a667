package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/lib/pq"

	"student-id-card-generation/internal/student"
	repo "student-id-card-generation/internal/student/repository"
)

const pqUniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// CreateStudent inserts a student and returns it joined with its department degree.
func (r *implRepository) CreateStudent(ctx context.Context, opt repo.CreateStudentOptions) (student.Student, error) {
	query := fmt.Sprintf(`
		WITH s AS (
			INSERT INTO students (%s, image_path)
			VALUES (%s, NULLIF($14, ''))
			RETURNING *
		)
		SELECT %s FROM s %s`, insertColumns, insertValues, studentColumns, departmentJoin)

	args := append(fieldArgs(opt.Fields), opt.ImagePath)
	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return student.Student{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateStudent"), err)
		return student.Student{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// GetOneStudent retrieves a single Student by the provided filters.
// Returns zero-value Student (ID == 0) when not found.
func (r *implRepository) GetOneStudent(ctx context.Context, opt repo.GetOneStudentOptions) (student.Student, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM students s %s WHERE %s LIMIT 1", studentColumns, departmentJoin, mods)

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return student.Student{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneStudent"), err)
		return student.Student{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListStudents returns the students matching the filter, ordered by name.
func (r *implRepository) ListStudents(ctx context.Context, opt repo.ListStudentsOptions) ([]student.Student, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM students s %s %s", studentColumns, departmentJoin, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStudents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListStudents"), err)
			return nil, repo.ErrFailedToList
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListStudents"), err)
		return nil, repo.ErrFailedToList
	}
	return students, nil
}

// UpdateStudent rewrites a student. Returns zero-value Student when the id does not exist.
func (r *implRepository) UpdateStudent(ctx context.Context, opt repo.UpdateStudentOptions) (student.Student, error) {
	query := fmt.Sprintf(`
		WITH s AS (
			UPDATE students SET
				name = $1,
				father_name = NULLIF($2, ''),
				cnic = NULLIF($3, ''),
				caste = NULLIF($4, ''),
				roll_no = NULLIF($5, ''),
				batch = NULLIF($6, ''),
				department = NULLIF($7, ''),
				year = NULLIF($8, ''),
				enrollment = NULLIF($9, ''),
				emergency_contact = NULLIF($10, ''),
				relation = NULLIF($11, ''),
				blood_group = NULLIF($12, ''),
				address = NULLIF($13, ''),
				image_path = COALESCE(NULLIF($14, ''), image_path)
			WHERE id = $15
			RETURNING *
		)
		SELECT %s FROM s %s`, studentColumns, departmentJoin)

	args := append(fieldArgs(opt.Fields), opt.ImagePath, opt.ID)
	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return student.Student{}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return student.Student{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStudent"), err)
		return student.Student{}, repo.ErrFailedToUpdate
	}
	return s, nil
}

// DeleteStudent removes a Student by ID.
func (r *implRepository) DeleteStudent(ctx context.Context, id int64) error {
	const query = `DELETE FROM students WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteStudent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ImportStudents upserts every row by roll number. Either all rows are written or none.
func (r *implRepository) ImportStudents(ctx context.Context, opts []repo.UpsertStudentOptions) (int, int, error) {
	query := fmt.Sprintf(`
		INSERT INTO students (%s)
		VALUES (%s)
		ON CONFLICT (roll_no) DO UPDATE SET
			name = EXCLUDED.name,
			father_name = EXCLUDED.father_name,
			cnic = EXCLUDED.cnic,
			caste = EXCLUDED.caste,
			batch = EXCLUDED.batch,
			department = EXCLUDED.department,
			year = EXCLUDED.year,
			enrollment = EXCLUDED.enrollment,
			emergency_contact = EXCLUDED.emergency_contact,
			relation = EXCLUDED.relation,
			blood_group = EXCLUDED.blood_group,
			address = EXCLUDED.address
		RETURNING (xmax = 0)`, insertColumns, insertValues)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ImportStudents"), err)
		return 0, 0, repo.ErrFailedToImport
	}

	fail := func(stage string, err error) (int, int, error) {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = multierror.Append(err, rbErr)
		}
		r.l.Errorf(ctx, "%s %s: %v", r.dsn("ImportStudents"), stage, err)
		if isUniqueViolation(err) {
			return 0, 0, repo.ErrUniqueViolation
		}
		return 0, 0, repo.ErrFailedToImport
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fail("prepare", err)
	}
	defer stmt.Close()

	var inserted, updated int
	for _, opt := range opts {
		var isInsert bool
		if err := stmt.QueryRowContext(ctx, fieldArgs(opt.Fields)...).Scan(&isInsert); err != nil {
			return fail("roll_no "+opt.Fields.RollNo, err)
		}
		if isInsert {
			inserted++
		} else {
			updated++
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("ImportStudents"), err)
		return 0, 0, repo.ErrFailedToImport
	}
	return inserted, updated, nil
}

func (r *implRepository) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	const query = `UPDATE students SET image_path = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, imagePath, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetImagePath"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) SetQRCode(ctx context.Context, id int64, qrCode string) error {
	const query = `UPDATE students SET qr_code = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, qrCode, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetQRCode"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
