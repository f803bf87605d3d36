package sprite

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/math/f32"
)

// Shape 子弹精灵图的形状
type Shape string

const (
	ShapeCircle  Shape = "circle"
	ShapeArrow   Shape = "arrow"
	ShapeStar    Shape = "star"
	ShapeDiamond Shape = "diamond"
	ShapeBolt    Shape = "bolt"
	ShapeFire    Shape = "fire"
)

// allShapes 保持固定顺序，用于错误提示和预览
var allShapes = []Shape{ShapeCircle, ShapeArrow, ShapeStar, ShapeDiamond, ShapeBolt, ShapeFire}

// outlineColors 各形状的描边颜色
var outlineColors = map[Shape]color.NRGBA{
	ShapeCircle:  {R: 255, G: 255, B: 255, A: 200},
	ShapeArrow:   {R: 255, G: 255, B: 255, A: 200},
	ShapeStar:    {R: 255, G: 255, B: 255, A: 150},
	ShapeDiamond: {R: 255, G: 255, B: 255, A: 200},
	ShapeBolt:    {R: 255, G: 255, B: 255, A: 180},
	ShapeFire:    {R: 255, G: 200, B: 100, A: 200},
}

// ParseShape 将名称解析为形状（不区分大小写）
func ParseShape(name string) (Shape, error) {
	s := Shape(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := outlineColors[s]; !ok {
		return "", fmt.Errorf("unknown shape %q", name)
	}
	return s, nil
}

// ShapeNames 返回所有形状名称
func ShapeNames() []string {
	names := make([]string, len(allShapes))
	for i, s := range allShapes {
		names[i] = string(s)
	}
	return names
}

// Outline 返回形状的描边颜色
func (s Shape) Outline() color.NRGBA {
	return outlineColors[s]
}

// Polygon 返回形状在 size×size 画布上的顶点
//
// 坐标以像素中心为单位（像素 (x,y) 的中心即坐标 (x,y)），
// 光栅化时再统一偏移半个像素。圆形返回逼近圆周的多边形。
func (s Shape) Polygon(size int) []f32.Vec2 {
	fs := float64(size)
	c := float64(size / 2)

	switch s {
	case ShapeCircle:
		return circlePolygon(c, c, float64(size/3), size)

	case ShapeArrow:
		// 指向右侧的箭头
		return vecs(
			fs*0.2, c,
			fs*0.7, c-fs*0.2,
			fs*0.7, c-fs*0.1,
			fs*0.9, c,
			fs*0.7, c+fs*0.1,
			fs*0.7, c+fs*0.2,
		)

	case ShapeStar:
		pts := make([]f32.Vec2, 0, 10)
		for i := 0; i < 10; i++ {
			angle := float64(i*36-90) * math.Pi / 180
			r := fs * 0.15
			if i%2 == 0 {
				r = fs * 0.35
			}
			pts = append(pts, f32.Vec2{float32(c + r*math.Cos(angle)), float32(c + r*math.Sin(angle))})
		}
		return pts

	case ShapeDiamond:
		return vecs(
			c, fs*0.15,
			fs*0.85, c,
			c, fs*0.85,
			fs*0.15, c,
		)

	case ShapeBolt:
		return vecs(
			c+fs*0.1, fs*0.1,
			c, c-fs*0.1,
			c+fs*0.15, c,
			c-fs*0.05, c,
			c, c+fs*0.1,
			c-fs*0.1, fs*0.9,
			c-fs*0.05, c+fs*0.1,
			c+fs*0.05, c+fs*0.1,
		)

	case ShapeFire:
		// 半径交替的八边形火焰
		pts := make([]f32.Vec2, 0, 8)
		for i := 0; i < 8; i++ {
			angle := float64(i*45-90) * math.Pi / 180
			r := fs*0.3 + fs*0.1*float64(i%2)
			pts = append(pts, f32.Vec2{float32(c + r*math.Cos(angle)), float32(c + r*math.Sin(angle))})
		}
		return pts
	}

	return nil
}

// circlePolygon 用多边形逼近圆
// 半径额外加半个像素，与包含边界像素的外接框一致
func circlePolygon(cx, cy, r float64, size int) []f32.Vec2 {
	segments := size
	if segments < 32 {
		segments = 32
	}
	r += 0.5

	pts := make([]f32.Vec2, segments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = f32.Vec2{float32(cx + r*math.Cos(angle)), float32(cy + r*math.Sin(angle))}
	}
	return pts
}

func vecs(xy ...float64) []f32.Vec2 {
	pts := make([]f32.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, f32.Vec2{float32(xy[i]), float32(xy[i+1])})
	}
	return pts
}
