// Package storage persists uploaded student photos and generated QR images.
//
// Files are addressed by a relative key such as "uploads/students/21BSCS01_Ali_1700000000.png".
// The key is what gets stored alongside the student record.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

var (
	ErrInvalidKey = errors.New("storage: invalid key")
	ErrNotFound   = errors.New("storage: object not found")
)

// Storage saves and removes files and resolves them to public URLs.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// CleanKey normalizes key and rejects anything that escapes the storage root.
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimPrefix(key, "static/")
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
