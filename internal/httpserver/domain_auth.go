package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "student-id-card-generation/internal/auth/delivery/http"
	authRepo "student-id-card-generation/internal/auth/repository/postgre"
	authUC "student-id-card-generation/internal/auth/usecase"
	"student-id-card-generation/internal/middleware"
)

// setupAuthDomain registers /create_admin, /login, /logout and /admin.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(srv.l, repo, srv.sessions)
	h := authHTTP.New(srv.l, uc, srv.signer, authHTTP.CookieConfig{
		Secure: srv.cookieSecure,
		TTL:    srv.sessionTTL,
	})

	authHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
