package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sopranosite/internal/db"
)

func TestBiographyUpdateText(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()
	if err := db.SeedSingletons(gdb); err != nil {
		t.Fatalf("failed to seed singletons: %v", err)
	}

	assets := &assetStoreStub{}
	svc := NewBiographyService(gdb, assets)

	bio, err := svc.UpdateText("  Soprano lírica nacida en Madrid.  ")
	if err != nil {
		t.Fatalf("failed to update biography: %v", err)
	}
	if bio.BiographyText != "Soprano lírica nacida en Madrid." {
		t.Fatalf("expected trimmed text, got %q", bio.BiographyText)
	}

	reread, err := svc.Get()
	if err != nil {
		t.Fatalf("failed to reload biography: %v", err)
	}
	if reread.BiographyText != bio.BiographyText {
		t.Fatalf("update did not persist")
	}
}

func TestBiographyUpdatePhotoKeepsOldAsset(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()
	if err := db.SeedSingletons(gdb); err != nil {
		t.Fatalf("failed to seed singletons: %v", err)
	}

	assets := &assetStoreStub{}
	svc := NewBiographyService(gdb, assets)

	first, err := svc.UpdatePhoto(context.Background(), "retrato.jpg", "image/jpeg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("failed to set photo: %v", err)
	}
	second, err := svc.UpdatePhoto(context.Background(), "retrato2.jpg", "image/jpeg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("failed to replace photo: %v", err)
	}
	if first.PhotoURL == second.PhotoURL {
		t.Fatalf("expected a fresh object per upload")
	}
	// Replacing the portrait never deletes the previous asset.
	if len(assets.removed) != 0 {
		t.Fatalf("expected no asset removals, got %v", assets.removed)
	}
}

func TestHomepageUpdate(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()
	if err := db.SeedSingletons(gdb); err != nil {
		t.Fatalf("failed to seed singletons: %v", err)
	}

	svc := NewHomepageService(gdb, &assetStoreStub{})

	if _, err := svc.Update(HomepageInput{Subtitle: "Soprano"}); !errors.Is(err, ErrHomepageTitleNeeded) {
		t.Fatalf("expected ErrHomepageTitleNeeded, got %v", err)
	}

	home, err := svc.Update(HomepageInput{
		Subtitle:      "Soprano",
		MainTitle:     "Lucía Herranz",
		Description:   "Voz para momentos inolvidables",
		Service1Title: "Bodas",
		CTATitle:      "Reserva tu fecha",
	})
	if err != nil {
		t.Fatalf("failed to update homepage: %v", err)
	}
	if home.MainTitle != "Lucía Herranz" || home.Service1Title != "Bodas" {
		t.Fatalf("unexpected homepage fields: %+v", home)
	}

	reread, err := svc.Get()
	if err != nil {
		t.Fatalf("failed to reload homepage: %v", err)
	}
	if reread.CTATitle != "Reserva tu fecha" {
		t.Fatalf("update did not persist")
	}
}

func TestHomepageUpdateHero(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()
	if err := db.SeedSingletons(gdb); err != nil {
		t.Fatalf("failed to seed singletons: %v", err)
	}

	assets := &assetStoreStub{}
	svc := NewHomepageService(gdb, assets)

	home, err := svc.UpdateHero(context.Background(), "hero.jpg", "image/jpeg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("failed to set hero image: %v", err)
	}
	if home.HeroImageURL == "" {
		t.Fatalf("expected hero image url to be set")
	}
}
