package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStore hosts uploads in a Google Cloud Storage bucket whose objects are
// publicly readable, either directly or through a CDN domain.
type GCSStore struct {
	client        *storage.Client
	bucket        string
	folder        string
	publicBaseURL string
}

// NewGCSStore connects to GCS. publicBaseURL overrides the default
// storage.googleapis.com URL when the bucket sits behind a CDN; folder scopes
// every object under one prefix.
func NewGCSStore(ctx context.Context, bucket, folder, publicBaseURL string, opts ...option.ClientOption) (*GCSStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("bucket name is required")
	}

	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		base = fmt.Sprintf("https://storage.googleapis.com/%s", bucket)
	}

	return &GCSStore{
		client:        client,
		bucket:        bucket,
		folder:        strings.Trim(folder, "/"),
		publicBaseURL: base,
	}, nil
}

// Upload writes the file to the bucket under a fresh unique name.
func (s *GCSStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (Object, error) {
	name := NewObjectName(filename)
	objectName := s.objectName(name)

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return Object{}, fmt.Errorf("write object %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return Object{}, fmt.Errorf("finish object %s: %w", objectName, err)
	}

	return Object{
		URL: fmt.Sprintf("%s/%s", s.publicBaseURL, objectName),
		Key: name,
	}, nil
}

// Remove deletes an object by key.
func (s *GCSStore) Remove(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("invalid storage key")
	}
	if err := s.client.Bucket(s.bucket).Object(s.objectName(key)).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) objectName(key string) string {
	if s.folder == "" {
		return key
	}
	return path.Join(s.folder, key)
}
