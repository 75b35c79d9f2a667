package session

import (
	"errors"
	"time"
)

const (
	CookieName = "session"
	keyPrefix  = "session:"

	DefaultTTL = 24 * time.Hour
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrInvalidSignature = errors.New("invalid session signature")
)

// Data is what a session remembers about the logged-in user.
type Data struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
