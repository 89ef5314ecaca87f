package service

import (
	"errors"
	"testing"

	"github.com/sopranosite/internal/db"
)

func TestPressAppendAfterDeletionGap(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	// A prior deletion left the collection at {0, 1, 3}.
	for _, idx := range []int{0, 1, 3} {
		link := db.PressLink{Title: "Crítica", URL: "https://example.com/articulo", OrderIndex: idx}
		if err := gdb.Create(&link).Error; err != nil {
			t.Fatalf("failed to seed press link: %v", err)
		}
	}

	svc := NewPressService(gdb)
	item, err := svc.Append(PressLinkInput{
		Title:  "Entrevista",
		Source: "Diario de Ibiza",
		URL:    "https://example.com/entrevista",
	})
	if err != nil {
		t.Fatalf("failed to append press link: %v", err)
	}
	if item.OrderIndex != 4 {
		t.Fatalf("expected order index 4 after {0,1,3}, got %d", item.OrderIndex)
	}
}

func TestPressAppendValidatesInput(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewPressService(gdb)
	if _, err := svc.Append(PressLinkInput{Source: "Prensa"}); !errors.Is(err, ErrPressLinkInvalidInput) {
		t.Fatalf("expected ErrPressLinkInvalidInput, got %v", err)
	}
}

func TestPressDelete(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewPressService(gdb)
	item, err := svc.Append(PressLinkInput{Title: "Reseña", URL: "https://example.com/resena"})
	if err != nil {
		t.Fatalf("failed to append press link: %v", err)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("failed to delete press link: %v", err)
	}
	if err := svc.Delete(item.ID); !errors.Is(err, ErrPressLinkNotFound) {
		t.Fatalf("expected ErrPressLinkNotFound, got %v", err)
	}
}
