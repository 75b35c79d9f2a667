package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"student-id-card-generation/config"
	"student-id-card-generation/pkg/storage"
)

// newStorage builds the configured backend. For local storage it also returns
// the directory to serve under the URL prefix.
func newStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, string, error) {
	switch cfg.Backend {
	case storage.BackendLocal:
		return storage.NewLocal(cfg.LocalRoot, cfg.URLPrefix), cfg.LocalRoot, nil
	case storage.BackendS3:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.S3.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.S3.Profile))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, "", fmt.Errorf("load aws config: %w", err)
		}
		s, err := storage.NewS3(s3.NewFromConfig(awsCfg), storage.S3Config{
			Bucket:        cfg.S3.Bucket,
			Prefix:        cfg.S3.Prefix,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
		if err != nil {
			return nil, "", err
		}
		return s, "", nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
