package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration. It is built once by Load and passed
// down to constructors; nothing reads configuration after startup.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Security   SecurityConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig
	Storage  StorageConfig

	// Workflow engine webhooks
	Workflow WorkflowConfig

	// Uploads
	Upload UploadConfig

	// Chat endpoint rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SecurityConfig struct {
	SecretKey      string
	SessionTTL     time.Duration
	CookieSecure   bool
	AllowedOrigins []string
}

type PostgresConfig struct {
	Host            string
	Port            int
	DBName          string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrateOnStart  bool
}

// DSN returns a lib/pq connection URL. Credentials are escaped.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Backend   string // local | s3
	LocalRoot string
	URLPrefix string
	S3        S3Config
}

type S3Config struct {
	Bucket        string
	Prefix        string
	Region        string
	Profile       string
	PublicBaseURL string
}

type WorkflowConfig struct {
	DepartmentURL     string
	BatchURL          string
	PageNavigationURL string
	Timeout           time.Duration
}

type UploadConfig struct {
	MaxImageBytes     int64
	AllowedImageExts  []string
	StudentImageDir   string
	UploadedImageDir  string
	QRCodeDir         string
	MaxImportFileSize int64
}

type RateLimitConfig struct {
	// ChatPerMin is the per-client budget for /ai/message. 0 disables the limit.
	ChatPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Security
	cfg.Security.SecretKey = v.GetString("security.secret_key")
	if secret := v.GetString("secret_key"); secret != "" {
		cfg.Security.SecretKey = secret
	}
	cfg.Security.SessionTTL = v.GetDuration("security.session_ttl")
	cfg.Security.CookieSecure = v.GetBool("security.cookie_secure")
	cfg.Security.AllowedOrigins = splitList(v.GetString("security.allowed_origins"))

	// Postgres, with the flat DB_* variables taking precedence
	cfg.Postgres.Host = firstNonEmpty(v.GetString("db_host"), v.GetString("postgres.host"))
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.DBName = firstNonEmpty(v.GetString("db_name"), v.GetString("postgres.dbname"))
	cfg.Postgres.User = firstNonEmpty(v.GetString("db_user"), v.GetString("postgres.user"))
	cfg.Postgres.Password = firstNonEmpty(v.GetString("db_password"), v.GetString("postgres.password"))
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = v.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.MigrateOnStart = v.GetBool("postgres.migrate_on_start")

	// Redis
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Storage
	cfg.Storage.Backend = v.GetString("storage.backend")
	cfg.Storage.LocalRoot = v.GetString("storage.local_root")
	cfg.Storage.URLPrefix = v.GetString("storage.url_prefix")
	cfg.Storage.S3.Bucket = v.GetString("storage.s3.bucket")
	cfg.Storage.S3.Prefix = v.GetString("storage.s3.prefix")
	cfg.Storage.S3.Region = v.GetString("storage.s3.region")
	cfg.Storage.S3.Profile = v.GetString("storage.s3.profile")
	cfg.Storage.S3.PublicBaseURL = v.GetString("storage.s3.public_base_url")

	// Workflow engine
	cfg.Workflow.DepartmentURL = v.GetString("workflow.department_url")
	cfg.Workflow.BatchURL = v.GetString("workflow.batch_url")
	cfg.Workflow.PageNavigationURL = v.GetString("workflow.page_navigation_url")
	cfg.Workflow.Timeout = v.GetDuration("workflow.timeout")

	// Uploads
	cfg.Upload.MaxImageBytes = v.GetInt64("upload.max_image_bytes")
	cfg.Upload.AllowedImageExts = splitList(v.GetString("upload.allowed_image_exts"))
	cfg.Upload.StudentImageDir = v.GetString("upload.student_image_dir")
	cfg.Upload.UploadedImageDir = firstNonEmpty(v.GetString("upload_folder"), v.GetString("upload.uploaded_image_dir"))
	cfg.Upload.QRCodeDir = v.GetString("upload.qr_code_dir")
	cfg.Upload.MaxImportFileSize = v.GetInt64("upload.max_import_file_size")

	// Rate limiting
	cfg.RateLimit.ChatPerMin = v.GetInt("rate_limit.chat_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Security.SecretKey == "" {
		return fmt.Errorf("security.secret_key (SECRET_KEY) is required")
	}
	if cfg.Workflow.DepartmentURL == "" || cfg.Workflow.BatchURL == "" || cfg.Workflow.PageNavigationURL == "" {
		return fmt.Errorf("workflow.department_url, workflow.batch_url and workflow.page_navigation_url are required")
	}
	switch cfg.Storage.Backend {
	case "local":
	case "s3":
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is required when storage.backend is s3")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", cfg.Storage.Backend)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("security.secret_key", "dev-secret-change-me")
	v.SetDefault("security.session_ttl", "24h")
	v.SetDefault("security.cookie_secure", false)
	v.SetDefault("security.allowed_origins", "http://localhost:8080")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.dbname", "admission_db")
	v.SetDefault("postgres.user", "admission_user")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 25)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", "5m")
	v.SetDefault("postgres.migrate_on_start", true)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local_root", "static")
	v.SetDefault("storage.url_prefix", "/static")

	v.SetDefault("workflow.department_url", "http://localhost:5678/webhook/ai-department-agent")
	v.SetDefault("workflow.batch_url", "http://localhost:5678/webhook/ai-batch-agent")
	v.SetDefault("workflow.page_navigation_url", "http://localhost:5678/webhook/ai-page-navigation-agent")
	v.SetDefault("workflow.timeout", "15s")

	v.SetDefault("upload.max_image_bytes", 2*1024*1024)
	v.SetDefault("upload.allowed_image_exts", "png,jpg,jpeg,gif")
	v.SetDefault("upload.student_image_dir", "uploads/students")
	v.SetDefault("upload.uploaded_image_dir", "uploads/student_images")
	v.SetDefault("upload.qr_code_dir", "qr_codes")
	v.SetDefault("upload.max_import_file_size", 10*1024*1024)

	v.SetDefault("rate_limit.chat_per_min", 60)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
