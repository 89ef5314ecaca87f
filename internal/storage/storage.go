package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object describes a stored binary: the public URL recorded alongside the
// content row, and the key used for later removal.
type Object struct {
	URL string
	Key string
}

// AssetStore hosts uploaded images. Upload assigns a fresh random name per
// call, so a retried upload never collides with an earlier attempt (and never
// deduplicates either). Remove deletes by key; keys are the URL's trailing
// path segment.
type AssetStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (Object, error)
	Remove(ctx context.Context, key string) error
}

// NewObjectName builds a unique storage name for an uploaded file, keeping
// the original extension.
func NewObjectName(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}

// KeyFromURL recovers the storage key from a stored public URL: its trailing
// path segment. Returns "" when no segment can be derived.
func KeyFromURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Path != "" {
		trimmed = parsed.Path
	}
	key := path.Base(trimmed)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
