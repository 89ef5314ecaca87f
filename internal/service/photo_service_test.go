package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sopranosite/internal/storage"
)

type assetStoreStub struct {
	uploads   []string
	removed   []string
	uploadErr error
	removeErr error
}

func (s *assetStoreStub) Upload(_ context.Context, filename, _ string, r io.Reader) (storage.Object, error) {
	if s.uploadErr != nil {
		return storage.Object{}, s.uploadErr
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return storage.Object{}, err
	}
	key := fmt.Sprintf("obj-%d.jpg", len(s.uploads))
	s.uploads = append(s.uploads, key)
	return storage.Object{
		URL: "https://cdn.example.com/galeria/" + key,
		Key: key,
	}, nil
}

func (s *assetStoreStub) Remove(_ context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, key)
	return nil
}

func TestPhotoAppendUploadsBeforeInsert(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	assets := &assetStoreStub{}
	svc := NewPhotoService(gdb, assets)

	item, err := svc.Append(context.Background(), PhotoInput{Title: "Concierto"}, "concierto.jpg", "image/jpeg", strings.NewReader("fake-image"))
	if err != nil {
		t.Fatalf("failed to append photo: %v", err)
	}
	if item.OrderIndex != 0 {
		t.Fatalf("expected first photo at index 0, got %d", item.OrderIndex)
	}
	if item.ImageURL != "https://cdn.example.com/galeria/obj-0.jpg" {
		t.Fatalf("unexpected image url: %s", item.ImageURL)
	}
	if len(assets.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(assets.uploads))
	}
}

func TestPhotoAppendWithoutFileRejectedBeforeMutation(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	assets := &assetStoreStub{}
	svc := NewPhotoService(gdb, assets)

	if _, err := svc.Append(context.Background(), PhotoInput{Title: "Sin imagen"}, "", "", nil); !errors.Is(err, ErrPhotoFileMissing) {
		t.Fatalf("expected ErrPhotoFileMissing, got %v", err)
	}

	if len(assets.uploads) != 0 {
		t.Fatalf("expected no uploads, got %d", len(assets.uploads))
	}
	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list photos: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows, got %d", len(items))
	}
}

func TestPhotoAppendUploadFailureLeavesNoRow(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	assets := &assetStoreStub{uploadErr: errors.New("bucket unavailable")}
	svc := NewPhotoService(gdb, assets)

	if _, err := svc.Append(context.Background(), PhotoInput{}, "foto.jpg", "image/jpeg", strings.NewReader("fake-image")); err == nil {
		t.Fatalf("expected upload error")
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list photos: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows after failed upload, got %d", len(items))
	}
}

func TestPhotoDeleteRemovesAssetThenRow(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	assets := &assetStoreStub{}
	svc := NewPhotoService(gdb, assets)

	item, err := svc.Append(context.Background(), PhotoInput{}, "foto.jpg", "image/jpeg", strings.NewReader("fake-image"))
	if err != nil {
		t.Fatalf("failed to append photo: %v", err)
	}

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("failed to delete photo: %v", err)
	}
	if len(assets.removed) != 1 || assets.removed[0] != "obj-0.jpg" {
		t.Fatalf("expected asset obj-0.jpg removed, got %v", assets.removed)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list photos: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows after delete, got %d", len(items))
	}
}

func TestPhotoDeleteProceedsWhenAssetRemovalFails(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	assets := &assetStoreStub{}
	svc := NewPhotoService(gdb, assets)

	item, err := svc.Append(context.Background(), PhotoInput{}, "foto.jpg", "image/jpeg", strings.NewReader("fake-image"))
	if err != nil {
		t.Fatalf("failed to append photo: %v", err)
	}

	assets.removeErr = errors.New("object locked")
	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("expected row delete to proceed, got %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list photos: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows despite asset failure, got %d", len(items))
	}
}

func TestPhotoDeleteMissing(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewPhotoService(gdb, &assetStoreStub{})
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrPhotoNotFound) {
		t.Fatalf("expected ErrPhotoNotFound, got %v", err)
	}
}
