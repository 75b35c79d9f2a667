package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.sessions, srv.signer, srv.metrics, srv.middlewareCfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		gin.Recovery(),
		mw.RequestID(),
		mw.AccessLog(),
		mw.Metrics(),
		mw.Secure(),
		mw.CORS(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	if srv.staticDir != "" {
		srv.gin.Static(srv.staticPrefix, srv.staticDir)
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	root := srv.gin.Group("")
	admin := srv.gin.Group("/admin")

	if err := srv.setupAuthDomain(ctx, root, mw); err != nil {
		return err
	}
	batchUC, err := srv.setupBatchDomain(ctx, admin, mw)
	if err != nil {
		return err
	}
	departmentUC, err := srv.setupDepartmentDomain(ctx, admin, mw)
	if err != nil {
		return err
	}
	if err := srv.setupStudentDomain(ctx, root, mw, batchUC, departmentUC); err != nil {
		return err
	}
	if err := srv.setupAssistantDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}
