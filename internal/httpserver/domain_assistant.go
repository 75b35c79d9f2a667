package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "student-id-card-generation/internal/assistant/delivery/http"
	assistantUC "student-id-card-generation/internal/assistant/usecase"
	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/router"
)

// setupAssistantDomain registers /ai/message.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	uc := assistantUC.New(srv.l, router.New(srv.l), srv.workflow, srv.metrics)
	h := assistantHTTP.New(srv.l, uc)

	assistantHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
