package auth

import "student-id-card-generation/internal/model"

// User is an account that can sign in to the admin area.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         model.Role
}

// Counts are the dashboard totals.
type Counts struct {
	Students    int
	Batches     int
	Departments int
}

// --- UseCase Inputs ---

type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type CreateAdminOutput struct {
	User User
}

type LoginOutput struct {
	// SessionID is the unsigned id of the new session.
	SessionID string
	User      User
}

type DashboardOutput struct {
	Counts Counts
}
