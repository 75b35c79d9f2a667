package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/model"
)

// RegisterRoutes maps admin bootstrap, login, logout and the dashboard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/create_admin", h.AdminExists)
	rg.POST("/create_admin", h.CreateAdmin)
	rg.POST("/login", mw.OptionalAuth(), h.Login)
	rg.GET("/logout", mw.OptionalAuth(), h.Logout)
	rg.GET("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.Dashboard)
}
