// Package migration applies the embedded SQL schema migrations.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"student-id-card-generation/pkg/log"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Up applies every pending migration. Running it against an up-to-date schema is a no-op.
func Up(ctx context.Context, db *sql.DB, l log.Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	l.Info(ctx, "internal.migration.Up: applying database migrations")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info(ctx, "internal.migration.Up: schema is up to date")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	l.Infof(ctx, "internal.migration.Up: schema at version %d (dirty=%t)", version, dirty)
	return nil
}

// Source returns the embedded migration source.
func Source() (source.Driver, error) {
	d, err := iofs.New(migrationFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("create embedded migration source: %w", err)
	}
	return d, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := Source()
	if err != nil {
		return nil, err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
