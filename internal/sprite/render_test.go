package sprite

import (
	"image"
	"image/color"
	"testing"
)

var fireColor = color.NRGBA{R: 255, G: 80, B: 20, A: 255}

// TestRender_AllShapes checks the properties every sprite must have.
func TestRender_AllShapes(t *testing.T) {
	for _, shape := range allShapes {
		t.Run(string(shape), func(t *testing.T) {
			img, err := Render(64, fireColor, shape)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if img.Bounds() != image.Rect(0, 0, 64, 64) {
				t.Errorf("unexpected bounds %v", img.Bounds())
			}

			// 角落在光晕之外，必须完全透明
			for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
				if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
					t.Errorf("corner %v alpha = %d, want 0", p, a)
				}
			}

			// 至少有一个像素是不透明的填充色
			if countPixels(img, color.RGBA{R: 255, G: 80, B: 20, A: 255}) == 0 {
				t.Errorf("no opaque fill pixels")
			}
		})
	}
}

func TestRender_CenterIsFilled(t *testing.T) {
	want := color.RGBA{R: 255, G: 80, B: 20, A: 255}
	for _, shape := range []Shape{ShapeCircle, ShapeStar, ShapeDiamond, ShapeFire} {
		img, err := Render(64, fireColor, shape)
		if err != nil {
			t.Fatalf("%s: %v", shape, err)
		}
		if got := img.RGBAAt(32, 32); got != want {
			t.Errorf("%s: center pixel = %v, want %v", shape, got, want)
		}
	}
}

func TestRender_ArrowPointsRight(t *testing.T) {
	img, err := Render(64, fireColor, ShapeArrow)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// 箭头主体从 0.2s 延伸到 0.9s，左侧四分之一以外与右侧尖端之后为空
	if a := img.RGBAAt(50, 32).A; a != 255 {
		t.Errorf("arrow head pixel alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(61, 32).A; a == 255 {
		t.Errorf("pixel beyond the tip should not be opaque")
	}
}

// TestRenderGlow checks the three glow rings: outer ring strongest, inner weakest.
func TestRenderGlow(t *testing.T) {
	glow := renderGlow(64, fireColor)

	tests := []struct {
		name  string
		x, y  int
		alpha uint8
	}{
		{"outer ring", 32, 2, 30},  // 距中心 30
		{"middle ring", 32, 8, 20}, // 距中心 24
		{"inner disc", 32, 32, 10}, // 中心
		{"outside", 0, 0, 0},
	}

	for _, tt := range tests {
		if a := glow.RGBAAt(tt.x, tt.y).A; a != tt.alpha {
			t.Errorf("%s (%d,%d): alpha = %d, want %d", tt.name, tt.x, tt.y, a, tt.alpha)
		}
	}
}

// TestRender_GlowBehindShape checks that the glow survives outside the shape.
func TestRender_GlowBehindShape(t *testing.T) {
	img, err := Render(64, fireColor, ShapeCircle)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// 圆半径为 21，(32,2) 只有光晕
	if a := img.RGBAAt(32, 2).A; a != 30 {
		t.Errorf("glow pixel alpha = %d, want 30", a)
	}
}

func TestRender_OutlineColor(t *testing.T) {
	img, err := Render(64, color.NRGBA{R: 0, G: 0, B: 255, A: 255}, ShapeDiamond)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// 描边为半透明白色，与蓝色填充或光晕混合后红色通道必然大于 0
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).R > 100 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Errorf("no outline pixels found")
	}
}

func TestRender_InvalidInput(t *testing.T) {
	if _, err := Render(0, fireColor, ShapeCircle); err == nil {
		t.Errorf("expected error for size 0")
	}
	if _, err := Render(64, fireColor, Shape("hexagon")); err == nil {
		t.Errorf("expected error for unknown shape")
	}
}

func TestRender_Deterministic(t *testing.T) {
	a, _ := Render(48, fireColor, ShapeBolt)
	b, _ := Render(48, fireColor, ShapeBolt)
	if string(a.Pix) != string(b.Pix) {
		t.Errorf("rendering the same sprite twice produced different pixels")
	}
}

func countPixels(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}
