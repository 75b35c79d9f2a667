package postgre

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	repo "student-id-card-generation/internal/auth/repository"
	"student-id-card-generation/internal/model"
	"student-id-card-generation/pkg/log"
)

func newRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestCreateUser(t *testing.T) {
	r, mock := newRepo(t)
	query := regexp.QuoteMeta(`INSERT INTO users (id, name, email, password, role) VALUES ($1, $2, $3, $4, $5)`)

	mock.ExpectExec(query).
		WithArgs("u1", "Admin", "admin@uni.edu", "hash", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := r.CreateUser(context.Background(), repo.CreateUserOptions{
		ID: "u1", Name: "Admin", Email: "admin@uni.edu", PasswordHash: "hash", Role: model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID != "u1" || u.Role != model.RoleAdmin {
		t.Errorf("user = %+v", u)
	}

	mock.ExpectExec(query).WillReturnError(&pq.Error{Code: "23505"})
	_, err = r.CreateUser(context.Background(), repo.CreateUserOptions{ID: "u2", Role: model.RoleAdmin})
	if !errors.Is(err, repo.ErrUniqueViolation) {
		t.Errorf("err = %v, want ErrUniqueViolation", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetOneUser(t *testing.T) {
	cols := []string{"id", "name", "email", "password", "role"}

	t.Run("by email", func(t *testing.T) {
		r, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, role FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`)).
			WithArgs("admin@uni.edu").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u1", "Admin", "Admin@Uni.edu", "hash", "ADMIN"))

		u, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{Email: "admin@uni.edu"})
		if err != nil {
			t.Fatalf("GetOneUser: %v", err)
		}
		if u.ID != "u1" || u.Role != model.RoleAdmin {
			t.Errorf("user = %+v", u)
		}
	})

	t.Run("by role, none", func(t *testing.T) {
		r, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE role = $1 LIMIT 1`)).
			WithArgs("admin").
			WillReturnError(sql.ErrNoRows)

		u, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{Role: model.RoleAdmin})
		if err != nil {
			t.Fatalf("GetOneUser: %v", err)
		}
		if u.ID != "" {
			t.Errorf("expected zero user, got %+v", u)
		}
	})

	t.Run("driver error", func(t *testing.T) {
		r, mock := newRepo(t)
		mock.ExpectQuery(`FROM users`).WillReturnError(errors.New("conn reset"))

		_, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{Email: "x"})
		if !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestCountRecords(t *testing.T) {
	r, mock := newRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM students`).
		WillReturnRows(sqlmock.NewRows([]string{"s", "b", "d"}).AddRow(120, 4, 6))

	c, err := r.CountRecords(context.Background())
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if c.Students != 120 || c.Batches != 4 || c.Departments != 6 {
		t.Errorf("counts = %+v", c)
	}
}
