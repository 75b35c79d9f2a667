package postgre

import (
	"database/sql"
	"fmt"

	"student-id-card-generation/internal/student/repository"
	"student-id-card-generation/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for students.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("student/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("student/repository/postgre.%s", method)
}
