package postgre

import (
	"database/sql"
	"fmt"

	"student-id-card-generation/internal/department/repository"
	"student-id-card-generation/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for departments.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("department/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("department/repository/postgre.%s", method)
}
