package middleware

import (
	"github.com/go-chi/cors"
	"github.com/unrolled/secure"

	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/session"
)

// Config carries the knobs the middleware chain needs from the service config.
type Config struct {
	AllowedOrigins []string
	ChatPerMin     int
	IsDevelopment  bool
}

type Middleware struct {
	l        log.Logger
	sessions session.Store
	signer   session.Signer
	metrics  *metrics.Metrics
	limiter  *rateLimiter
	cors     *cors.Cors
	secure   *secure.Secure
}

func New(l log.Logger, sessions session.Store, signer session.Signer, m *metrics.Metrics, cfg Config) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		signer:   signer,
		metrics:  m,
		limiter:  newRateLimiter(cfg.ChatPerMin),
		cors: cors.New(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		secure: secure.New(secure.Options{
			FrameDeny:          true,
			ContentTypeNosniff: true,
			BrowserXssFilter:   true,
			ReferrerPolicy:     "same-origin",
			IsDevelopment:      cfg.IsDevelopment,
		}),
	}
}
