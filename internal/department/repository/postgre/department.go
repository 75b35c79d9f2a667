package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"student-id-card-generation/internal/department"
	repo "student-id-card-generation/internal/department/repository"
)

const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

func (r *implRepository) CreateDepartment(ctx context.Context, opt repo.CreateDepartmentOptions) (department.Department, error) {
	const query = `INSERT INTO departments (name, degree) VALUES ($1, $2) RETURNING id, name, degree`

	var d department.Department
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Degree).Scan(&d.ID, &d.Name, &d.Degree)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return department.Department{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDepartment"), err)
		return department.Department{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetOneDepartment returns a zero-value Department when nothing matches.
func (r *implRepository) GetOneDepartment(ctx context.Context, opt repo.GetOneDepartmentOptions) (department.Department, error) {
	var conditions []string
	var args []any
	if opt.ID != 0 {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Name != "" {
		args = append(args, opt.Name)
		conditions = append(conditions, fmt.Sprintf("LOWER(name) = LOWER($%d)", len(args)))
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	query := fmt.Sprintf("SELECT id, name, degree FROM departments WHERE %s LIMIT 1", where)

	var d department.Department
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.Degree)
	if err == sql.ErrNoRows {
		return department.Department{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDepartment"), err)
		return department.Department{}, repo.ErrFailedToGet
	}
	return d, nil
}

// ListDepartments returns every department in insertion order.
func (r *implRepository) ListDepartments(ctx context.Context) ([]department.Department, error) {
	const query = `SELECT id, name, degree FROM departments ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Degree); err != nil {
			return nil, repo.ErrFailedToList
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDepartments"), err)
		return nil, repo.ErrFailedToList
	}
	return departments, nil
}

func (r *implRepository) DeleteDepartment(ctx context.Context, id int64) error {
	const query = `DELETE FROM departments WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return repo.ErrForeignKeyViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDepartment"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
