package utils

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestCompositeImages(t *testing.T) {
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(0, 0, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	base.Set(1, 1, color.RGBA{R: 0, G: 0, B: 30, A: 30})

	overlay := image.NewRGBA(image.Rect(0, 0, 4, 4))
	overlay.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	overlay.Set(2, 2, color.RGBA{R: 0, G: 255, B: 0, A: 255})

	result := CompositeImages(base, overlay)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"opaque overlay replaces base", 0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{"transparent overlay keeps base", 1, 1, color.RGBA{R: 0, G: 0, B: 30, A: 30}},
		{"overlay over empty base", 2, 2, color.RGBA{R: 0, G: 255, B: 0, A: 255}},
		{"both empty", 3, 3, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := result.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	// 输入不被修改
	if got := base.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("base image was modified: %v", got)
	}
}

func TestCompositeImages_Nil(t *testing.T) {
	if CompositeImages(nil, nil) != nil {
		t.Errorf("expected nil for two nil inputs")
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{R: 10, A: 255})

	for _, got := range []*image.RGBA{CompositeImages(img, nil), CompositeImages(nil, img)} {
		if got == img {
			t.Errorf("expected a copy, got the input image")
		}
		if got.RGBAAt(1, 1) != (color.RGBA{R: 10, A: 255}) {
			t.Errorf("copy differs from input")
		}
	}
}

func TestSaveAndLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sprite.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG failed: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", loaded.Bounds(), img.Bounds())
	}
	r, g, b, a := loaded.At(3, 4).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
	if _, _, _, a := loaded.At(0, 0).RGBA(); a != 0 {
		t.Errorf("transparent pixel alpha = %d", a)
	}
}

func TestLoadPNG_Errors(t *testing.T) {
	if _, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
