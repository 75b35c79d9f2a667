package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// AdminExists reports whether the single admin account has been created.
	AdminExists(ctx context.Context) (bool, error)
	CreateAdmin(ctx context.Context, input CreateAdminInput) (CreateAdminOutput, error)
	// Login checks the credentials and opens a session.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, sessionID string) error
	Dashboard(ctx context.Context) (DashboardOutput, error)
}
