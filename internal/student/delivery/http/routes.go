package http

import (
	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/model"
)

// RegisterRoutes maps the public registration form and the admin student routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/student/register", h.Register)

	admin := rg.Group("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin))
	{
		students := admin.Group("/students")
		students.GET("", h.List)
		students.POST("", h.Create)
		students.GET("/:id", h.Detail)
		students.PUT("/:id", h.Update)
		students.DELETE("/:id", h.Delete)

		admin.POST("/upload_image/:id", h.UploadImage)
		admin.POST("/import", h.Import)
		admin.POST("/generate", h.Generate)
		admin.GET("/id_card/:id", h.IDCard)
		admin.GET("/id_preview/:id", h.IDPreview)
	}
}
