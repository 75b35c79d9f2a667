package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/department"
	departmentHTTP "student-id-card-generation/internal/department/delivery/http"
	departmentRepo "student-id-card-generation/internal/department/repository/postgre"
	departmentUC "student-id-card-generation/internal/department/usecase"
	"student-id-card-generation/internal/middleware"
)

// setupDepartmentDomain registers /admin/departments.
func (srv HTTPServer) setupDepartmentDomain(ctx context.Context, admin *gin.RouterGroup, mw middleware.Middleware) (department.UseCase, error) {
	repo := departmentRepo.New(srv.postgresDB, srv.l)
	uc := departmentUC.New(repo, srv.l)
	h := departmentHTTP.New(srv.l, uc)

	departmentHTTP.RegisterRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Department domain registered")
	return uc, nil
}
