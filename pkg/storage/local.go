package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files under a root directory that is served at URLPrefix.
type Local struct {
	root      string
	urlPrefix string
}

var _ Storage = (*Local)(nil)

// NewLocal creates a Local storage rooted at root, e.g. "static" served under "/static".
func NewLocal(root, urlPrefix string) *Local {
	return &Local{
		root:      root,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

// Root returns the directory files are written to.
func (s *Local) Root() string {
	return s.root
}

func (s *Local) Save(ctx context.Context, key string, r io.Reader) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return f.Close()
}

func (s *Local) Delete(ctx context.Context, key string) error {
	key, err := CleanKey(key)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (s *Local) URL(key string) string {
	key, err := CleanKey(key)
	if err != nil {
		return ""
	}
	return s.urlPrefix + "/" + key
}
