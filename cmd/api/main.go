package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"student-id-card-generation/config"
	"student-id-card-generation/config/postgre"
	"student-id-card-generation/config/redis"
	_ "student-id-card-generation/docs" // Swagger docs
	"student-id-card-generation/internal/httpserver"
	"student-id-card-generation/internal/middleware"
	"student-id-card-generation/internal/migration"
	"student-id-card-generation/internal/model"
	studentUC "student-id-card-generation/internal/student/usecase"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/qrcode"
	"student-id-card-generation/pkg/session"
	"student-id-card-generation/pkg/workflow"
)

// @title       Student ID Card Service API
// @description Student registration, bulk import, QR codes and printable ID cards, with an admin chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Student ID Card Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	if cfg.Postgres.MigrateOnStart {
		if err := migration.Up(ctx, db, logger); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
	}

	// 4. Redis sessions
	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer rdb.Close()

	// 5. File storage
	store, staticDir, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	logger.Infof(ctx, "Storage backend: %s", cfg.Storage.Backend)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		PostgresDB:   db,
		Redis:        rdb,
		Metrics:      metrics.New(),
		Sessions:     session.NewRedisStore(rdb, cfg.Security.SessionTTL),
		Signer:       session.NewSigner(cfg.Security.SecretKey),
		SessionTTL:   cfg.Security.SessionTTL,
		CookieSecure: cfg.Security.CookieSecure,
		Storage:      store,
		StaticDir:    staticDir,
		StaticPrefix: cfg.Storage.URLPrefix,
		QR:           qrcode.NewDefault(),
		Upload: studentUC.Config{
			MaxImageBytes:     cfg.Upload.MaxImageBytes,
			AllowedImageExts:  cfg.Upload.AllowedImageExts,
			StudentImageDir:   cfg.Upload.StudentImageDir,
			UploadedImageDir:  cfg.Upload.UploadedImageDir,
			QRCodeDir:         cfg.Upload.QRCodeDir,
			MaxImportFileSize: cfg.Upload.MaxImportFileSize,
		},
		Workflow: workflow.NewClient(workflow.Config{
			DepartmentURL:     cfg.Workflow.DepartmentURL,
			BatchURL:          cfg.Workflow.BatchURL,
			PageNavigationURL: cfg.Workflow.PageNavigationURL,
			Timeout:           cfg.Workflow.Timeout,
		}),
		Middleware: middleware.Config{
			AllowedOrigins: cfg.Security.AllowedOrigins,
			ChatPerMin:     cfg.RateLimit.ChatPerMin,
			IsDevelopment:  cfg.Environment.Name != string(model.EnvironmentProduction),
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
