package postgre

import (
	"database/sql"
	"fmt"

	"student-id-card-generation/internal/batch/repository"
	"student-id-card-generation/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for batches.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("batch/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("batch/repository/postgre.%s", method)
}
