package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"student-id-card-generation/internal/auth"
	repo "student-id-card-generation/internal/auth/repository"
	"student-id-card-generation/internal/model"
)

const pqUniqueViolation = pq.ErrorCode("23505")

// CreateUser inserts a user and returns it.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	const query = `INSERT INTO users (id, name, email, password, role) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Email, opt.PasswordHash, string(opt.Role))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return auth.User{}, repo.ErrUniqueViolation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return auth.User{
		ID:           opt.ID,
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Role:         opt.Role,
	}, nil
}

// GetOneUser returns the first matching user, or a zero User.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	where, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, where)

	var (
		u    auth.User
		role string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	if parsed, ok := model.ParseRole(role); ok {
		u.Role = parsed
	} else {
		r.l.Warnf(ctx, "%s: user %s has unknown role %q", r.dsn("GetOneUser"), u.ID, role)
	}
	return u, nil
}

// CountRecords returns the dashboard totals in one round trip.
func (r *implRepository) CountRecords(ctx context.Context) (auth.Counts, error) {
	const query = `SELECT
		(SELECT COUNT(*) FROM students),
		(SELECT COUNT(*) FROM batches),
		(SELECT COUNT(*) FROM departments)`

	var c auth.Counts
	if err := r.db.QueryRowContext(ctx, query).Scan(&c.Students, &c.Batches, &c.Departments); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountRecords"), err)
		return auth.Counts{}, repo.ErrFailedToCount
	}
	return c, nil
}
