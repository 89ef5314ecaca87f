package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		rawURL string
		want   string
	}{
		{"https://cdn.example.com/galeria/20240601-abc.jpg", "20240601-abc.jpg"},
		{"/static/uploads/foto.png", "foto.png"},
		{"https://cdn.example.com/galeria/foto.jpg?w=800", "foto.jpg"},
		{"", ""},
		{"https://cdn.example.com/", ""},
	}

	for _, tc := range cases {
		if got := KeyFromURL(tc.rawURL); got != tc.want {
			t.Errorf("KeyFromURL(%q) = %q, want %q", tc.rawURL, got, tc.want)
		}
	}
}

func TestNewObjectNameKeepsExtension(t *testing.T) {
	name := NewObjectName("retrato de concierto.JPG")
	if !strings.HasSuffix(name, ".JPG") {
		t.Fatalf("expected extension preserved, got %s", name)
	}
	if name == NewObjectName("retrato de concierto.JPG") {
		t.Fatalf("expected unique names per call")
	}
}

func TestLocalStoreUploadAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/uploads/")

	obj, err := store.Upload(context.Background(), "foto.jpg", "image/jpeg", strings.NewReader("fake-image"))
	if err != nil {
		t.Fatalf("failed to upload: %v", err)
	}
	if !strings.HasPrefix(obj.URL, "/static/uploads/") {
		t.Fatalf("unexpected url: %s", obj.URL)
	}
	if KeyFromURL(obj.URL) != obj.Key {
		t.Fatalf("key %q not recoverable from url %q", obj.Key, obj.URL)
	}

	data, err := os.ReadFile(filepath.Join(dir, obj.Key))
	if err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if string(data) != "fake-image" {
		t.Fatalf("unexpected file contents: %q", data)
	}

	if err := store.Remove(context.Background(), obj.Key); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, obj.Key)); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, got %v", err)
	}
}

func TestLocalStoreRemoveRejectsPathTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/static/uploads")

	if err := store.Remove(context.Background(), "../secrets.txt"); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if err := store.Remove(context.Background(), ""); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}
