package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/model"
)

// RegisterRoutes maps department routes behind an admin session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	departments := rg.Group("/departments", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		departments.GET("", h.List)
		departments.POST("", h.Create)
		departments.DELETE("/:id", h.Delete)
	}
}
