package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"student-id-card-generation/internal/assistant"
	"student-id-card-generation/internal/middleware"
	studentUC "student-id-card-generation/internal/student/usecase"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/qrcode"
	"student-id-card-generation/pkg/session"
	"student-id-card-generation/pkg/storage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB *sql.DB
	redis      goredis.UniversalClient
	metrics    *metrics.Metrics

	// Sessions
	sessions     session.Store
	signer       session.Signer
	sessionTTL   time.Duration
	cookieSecure bool

	// Files
	storage      storage.Storage
	staticDir    string
	staticPrefix string
	qr           qrcode.Encoder
	upload       studentUC.Config

	// Admin chat
	workflow assistant.Workflow

	middlewareCfg middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Redis      goredis.UniversalClient
	Metrics    *metrics.Metrics

	Sessions     session.Store
	Signer       session.Signer
	SessionTTL   time.Duration
	CookieSecure bool

	Storage storage.Storage
	// StaticDir is served under StaticPrefix when files live on local disk.
	StaticDir    string
	StaticPrefix string
	QR           qrcode.Encoder
	Upload       studentUC.Config

	Workflow assistant.Workflow

	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	qr := cfg.QR
	if qr == nil {
		qr = qrcode.NewDefault()
	}
	staticPrefix := cfg.StaticPrefix
	if staticPrefix == "" {
		staticPrefix = "/static"
	}

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		postgresDB:    cfg.PostgresDB,
		redis:         cfg.Redis,
		metrics:       cfg.Metrics,
		sessions:      cfg.Sessions,
		signer:        cfg.Signer,
		sessionTTL:    cfg.SessionTTL,
		cookieSecure:  cfg.CookieSecure,
		storage:       cfg.Storage,
		staticDir:     cfg.StaticDir,
		staticPrefix:  staticPrefix,
		qr:            qr,
		upload:        cfg.Upload,
		workflow:      cfg.Workflow,
		middlewareCfg: cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	if srv.workflow == nil {
		return errors.New("workflow client is required")
	}
	return nil
}
