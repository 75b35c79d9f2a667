package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. It is public and rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/message", mw.RateLimit(), h.Message)
	}
}
