// Copyright (c) 2025-2026 TÜMED
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tumed/tumed-go/internal/model"
)

// createTestImage creates a simple test image with the given dimensions.
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

// writeTestJPEG encodes a test image into dir and returns its filename.
func writeTestJPEG(t *testing.T, dir string, width, height int) string {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, createTestImage(width, height), nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	name := "test.jpg"
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}
	return name
}

func TestCreateVariants(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	name := writeTestJPEG(t, dir, 800, 600)
	results, err := p.CreateVariants(name)
	if err != nil {
		t.Fatalf("CreateVariants: %v", err)
	}
	if len(results) != len(model.ImageVariants) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(model.ImageVariants))
	}

	thumb := results[0]
	cfg := model.ImageVariants[model.VariantThumbnail]
	if thumb.Width != cfg.Width || thumb.Height != cfg.Height {
		t.Errorf("thumbnail = %dx%d, want %dx%d", thumb.Width, thumb.Height, cfg.Width, cfg.Height)
	}
	if _, err := os.Stat(thumb.FilePath); err != nil {
		t.Errorf("thumbnail file missing: %v", err)
	}

	w, h, err := p.Dimensions(thumb.FilePath)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != cfg.Width || h != cfg.Height {
		t.Errorf("Dimensions = %dx%d, want %dx%d", w, h, cfg.Width, cfg.Height)
	}
}

func TestCreateVariants_MissingSource(t *testing.T) {
	p := NewProcessor(t.TempDir())
	if _, err := p.CreateVariants("absent.jpg"); err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestCreateVariants_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fake.jpg"), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	p := NewProcessor(dir)
	if _, err := p.CreateVariants("fake.jpg"); err == nil {
		t.Error("expected decode error for non-image data")
	}
}

func TestDeleteVariants(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	name := writeTestJPEG(t, dir, 800, 600)
	if _, err := p.CreateVariants(name); err != nil {
		t.Fatalf("CreateVariants: %v", err)
	}

	if err := p.DeleteVariants(name); err != nil {
		t.Fatalf("DeleteVariants: %v", err)
	}
	thumbPath := filepath.Join(dir, model.VariantThumbnail, name)
	if _, err := os.Stat(thumbPath); !os.IsNotExist(err) {
		t.Errorf("thumbnail should be removed, stat err = %v", err)
	}

	// Idempotent for already-removed files
	if err := p.DeleteVariants(name); err != nil {
		t.Errorf("second DeleteVariants: %v", err)
	}
}

func TestDetectMimeType(t *testing.T) {
	var jpegBuf, pngBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, createTestImage(10, 10), nil); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&pngBuf, createTestImage(10, 10)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", jpegBuf.Bytes(), model.MimeTypeJPEG},
		{"png", pngBuf.Bytes(), model.MimeTypePNG},
		{"text", []byte("hello world, this is plain text"), "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMimeType(tt.data); got != tt.want {
				t.Errorf("DetectMimeType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyOrientation(t *testing.T) {
	img := createTestImage(40, 20)

	rotated := applyOrientation(img, 6)
	if rotated.Bounds().Dx() != 20 || rotated.Bounds().Dy() != 40 {
		t.Errorf("orientation 6 should swap dimensions, got %v", rotated.Bounds())
	}

	same := applyOrientation(img, 1)
	if same.Bounds() != img.Bounds() {
		t.Errorf("orientation 1 should be a no-op")
	}
}
