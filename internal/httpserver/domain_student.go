package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/batch"
	"student-id-card-generation/internal/department"
	"student-id-card-generation/internal/middleware"
	studentHTTP "student-id-card-generation/internal/student/delivery/http"
	studentRepo "student-id-card-generation/internal/student/repository/postgre"
	studentUC "student-id-card-generation/internal/student/usecase"
)

// setupStudentDomain registers /student/register and the admin student routes.
func (srv HTTPServer) setupStudentDomain(
	ctx context.Context,
	rg *gin.RouterGroup,
	mw middleware.Middleware,
	batches batch.UseCase,
	departments department.UseCase,
) error {
	repo := studentRepo.New(srv.postgresDB, srv.l)
	uc := studentUC.New(studentUC.Deps{
		Logger:       srv.l,
		Repo:         repo,
		BatchUC:      batches,
		DepartmentUC: departments,
		Storage:      srv.storage,
		QR:           srv.qr,
		Metrics:      srv.metrics,
	}, srv.upload)
	h := studentHTTP.New(srv.l, uc)

	studentHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Student domain registered")
	return nil
}
