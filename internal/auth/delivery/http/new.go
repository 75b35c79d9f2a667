package http

import (
	"time"

	"student-id-card-generation/internal/auth"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/session"
)

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	signer session.Signer
	cookie CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, signer session.Signer, cookie CookieConfig) *handler {
	if cookie.TTL <= 0 {
		cookie.TTL = session.DefaultTTL
	}
	return &handler{
		l:      l,
		uc:     uc,
		signer: signer,
		cookie: cookie,
	}
}
