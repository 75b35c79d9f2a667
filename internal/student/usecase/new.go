package usecase

import (
	"time"

	"student-id-card-generation/internal/batch"
	"student-id-card-generation/internal/department"
	"student-id-card-generation/internal/student"
	"student-id-card-generation/internal/student/repository"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/metrics"
	"student-id-card-generation/pkg/qrcode"
	"student-id-card-generation/pkg/storage"
)

// Config holds upload limits and the storage prefixes for generated files.
type Config struct {
	MaxImageBytes     int64
	AllowedImageExts  []string
	StudentImageDir   string
	UploadedImageDir  string
	QRCodeDir         string
	MaxImportFileSize int64
}

type implUseCase struct {
	l            log.Logger
	repo         repository.Repository
	batchUC      batch.UseCase
	departmentUC department.UseCase
	storage      storage.Storage
	qr           qrcode.Encoder
	metrics      *metrics.Metrics
	cfg          Config
	now          func() time.Time
}

// Deps bundles the collaborators of the student UseCase.
type Deps struct {
	Logger       log.Logger
	Repo         repository.Repository
	BatchUC      batch.UseCase
	DepartmentUC department.UseCase
	Storage      storage.Storage
	QR           qrcode.Encoder
	Metrics      *metrics.Metrics
}

// New creates a new student UseCase implementation.
func New(deps Deps, cfg Config) student.UseCase {
	return &implUseCase{
		l:            deps.Logger,
		repo:         deps.Repo,
		batchUC:      deps.BatchUC,
		departmentUC: deps.DepartmentUC,
		storage:      deps.Storage,
		qr:           deps.QR,
		metrics:      deps.Metrics,
		cfg:          cfg,
		now:          time.Now,
	}
}
