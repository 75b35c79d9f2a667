package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"student-id-card-generation/internal/batch"
	batchHTTP "student-id-card-generation/internal/batch/delivery/http"
	batchRepo "student-id-card-generation/internal/batch/repository/postgre"
	batchUC "student-id-card-generation/internal/batch/usecase"
	"student-id-card-generation/internal/middleware"
)

// setupBatchDomain registers /admin/batches and returns the use case for the
// student import reference check.
//
// Pattern followed by every domain:
//  1. Repository:   repo := xRepo.New(srv.postgresDB, srv.l)
//  2. UseCase:      uc := xUC.New(repo, srv.l)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupBatchDomain(ctx context.Context, admin *gin.RouterGroup, mw middleware.Middleware) (batch.UseCase, error) {
	repo := batchRepo.New(srv.postgresDB, srv.l)
	uc := batchUC.New(repo, srv.l)
	h := batchHTTP.New(srv.l, uc)

	batchHTTP.RegisterRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Batch domain registered")
	return uc, nil
}
