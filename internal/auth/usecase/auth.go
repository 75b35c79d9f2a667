package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"student-id-card-generation/internal/auth"
	repo "student-id-card-generation/internal/auth/repository"
	"student-id-card-generation/internal/model"
	"student-id-card-generation/pkg/session"
)

func (uc *implUseCase) AdminExists(ctx context.Context) (bool, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Role: model.RoleAdmin})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdminExists GetOneUser: %v", err)
		return false, err
	}
	return u.ID != "", nil
}

// CreateAdmin bootstraps the one admin account. It fails once an admin exists.
func (uc *implUseCase) CreateAdmin(ctx context.Context, input auth.CreateAdminInput) (auth.CreateAdminOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return auth.CreateAdminOutput{}, auth.ErrFieldsRequired
	}

	exists, err := uc.AdminExists(ctx)
	if err != nil {
		return auth.CreateAdminOutput{}, err
	}
	if exists {
		return auth.CreateAdminOutput{}, auth.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateAdmin bcrypt: %v", err)
		return auth.CreateAdminOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uc.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return auth.CreateAdminOutput{}, auth.ErrAdminExists
		}
		uc.l.Errorf(ctx, "uc.CreateAdmin CreateUser: %v", err)
		return auth.CreateAdminOutput{}, err
	}

	uc.l.Infof(ctx, "uc.CreateAdmin: admin %s created", u.ID)
	return auth.CreateAdminOutput{User: u}, nil
}

// Login matches the email case-insensitively and opens a session on success.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return auth.LoginOutput{}, auth.ErrCredentialsMissing
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if u.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		uc.l.Warnf(ctx, "uc.Login: bad password for user %s", u.ID)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	id, err := uc.sessions.Create(ctx, session.Data{
		UserID: u.ID,
		Name:   u.Name,
		Role:   string(u.Role),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login sessions.Create: %v", err)
		return auth.LoginOutput{}, err
	}
	return auth.LoginOutput{SessionID: id, User: u}, nil
}

func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Logout sessions.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Dashboard(ctx context.Context) (auth.DashboardOutput, error) {
	c, err := uc.repo.CountRecords(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard CountRecords: %v", err)
		return auth.DashboardOutput{}, err
	}
	return auth.DashboardOutput{Counts: c}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
