package utils

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// CompositeImages creates a new image by compositing a transparent overlay on top of a base image.
// This is the Porter-Duff "over" operation, used for layering a sprite body above its glow:
//   - baseImage: the background layer (e.g. glow rings)
//   - overlayImage: the layer drawn on top, keeping its own transparency
//
// Returns:
//   - A new *image.RGBA with the bounds of baseImage
//   - A copy of the non-nil image when the other one is nil
//
// Neither input is modified.
func CompositeImages(baseImage, overlayImage image.Image) *image.RGBA {
	if baseImage == nil && overlayImage == nil {
		return nil
	}
	if baseImage == nil {
		baseImage, overlayImage = overlayImage, nil
	}

	bounds := baseImage.Bounds()
	composited := image.NewRGBA(bounds)
	draw.Draw(composited, bounds, baseImage, bounds.Min, draw.Src)

	if overlayImage != nil {
		draw.Draw(composited, bounds, overlayImage, overlayImage.Bounds().Min, draw.Over)
	}

	return composited
}

// SavePNG encodes img as PNG and writes it to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// LoadPNG reads and decodes a PNG file.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
