package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/model"
)

// RegisterRoutes maps batch routes. Every route requires an admin session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	batches := rg.Group("/batches", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		batches.GET("", h.List)
		batches.POST("", h.Create)
		batches.DELETE("/:id", h.Delete)
	}
}
