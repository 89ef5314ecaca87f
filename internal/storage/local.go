package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploads on the local filesystem under a single directory
// served as static files.
type LocalStore struct {
	dir     string
	urlPath string
}

// NewLocalStore builds a LocalStore writing to dir and mapping files to
// urlPath (for example /static/uploads).
func NewLocalStore(dir, urlPath string) *LocalStore {
	return &LocalStore{
		dir:     dir,
		urlPath: strings.TrimRight(urlPath, "/"),
	}
}

// Upload stores the file under a fresh unique name and returns its public URL
// and key.
func (s *LocalStore) Upload(_ context.Context, filename, _ string, r io.Reader) (Object, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Object{}, fmt.Errorf("create upload dir: %w", err)
	}

	name := NewObjectName(filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return Object{}, fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return Object{}, fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return Object{}, fmt.Errorf("close upload file: %w", err)
	}

	return Object{
		URL: fmt.Sprintf("%s/%s", s.urlPath, name),
		Key: name,
	}, nil
}

// Remove deletes a stored file by key.
func (s *LocalStore) Remove(_ context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, "/\\") {
		return errors.New("invalid storage key")
	}
	return os.Remove(filepath.Join(s.dir, key))
}
