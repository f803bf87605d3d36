// Package sprite 程序化生成子弹精灵图
//
// 每张精灵图由两层组成：
//   - 光晕层：三个同心圆，由外到内透明度 30/20/10，后画的覆盖先画的
//   - 形状层：填充形状后再描一像素边
//
// 两层各自以替换语义绘制，最后把形状层 alpha 合成到光晕层之上。
package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gonewx/projgen/pkg/utils"
)

// glowAlphas 光晕三层的透明度（由外到内）
var glowAlphas = [3]uint8{30, 20, 10}

// Render 生成一张 size×size 的透明背景精灵图
func Render(size int, fill color.NRGBA, shape Shape) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sprite size must be positive, got %d", size)
	}
	if _, ok := outlineColors[shape]; !ok {
		return nil, fmt.Errorf("unknown shape %q", shape)
	}

	bounds := image.Rect(0, 0, size, size)

	body := image.NewRGBA(bounds)
	pts := shape.Polygon(size)
	fillPolygon(body, pts, fill)
	strokePolygon(body, pts, shape.Outline())

	glow := renderGlow(size, fill)
	return utils.CompositeImages(glow, body), nil
}

// renderGlow 绘制光晕层
// 半径依次为 R、R-R/6、R-2*(R/6)，R 为画布边长的一半
func renderGlow(size int, tint color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size / 2)
	radius := size / 2
	step := radius / 6
	for i, alpha := range glowAlphas {
		r := radius - i*step
		if r <= 0 {
			break
		}
		c := color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: alpha}
		fillPolygon(img, circlePolygon(center, center, float64(r), size), c)
	}

	return img
}
