package sprite

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// strokeWidth 描边宽度（像素）
const strokeWidth = 1.0

// fillPolygon 以替换语义填充多边形
func fillPolygon(dst *image.RGBA, pts []f32.Vec2, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}

	mask := coverage(dst.Bounds(), func(z *vector.Rasterizer) {
		z.MoveTo(pts[0][0]+0.5, pts[0][1]+0.5)
		for _, p := range pts[1:] {
			z.LineTo(p[0]+0.5, p[1]+0.5)
		}
		z.ClosePath()
	})
	paint(dst, mask, c)
}

// strokePolygon 以替换语义沿闭合多边形描边
//
// 每条边展开为一个矩形，两端各延长半个线宽以补齐拐角。
// 所有矩形方向一致，重叠处覆盖率累加后截断为 1，不会互相抵消。
func strokePolygon(dst *image.RGBA, pts []f32.Vec2, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}

	half := float32(strokeWidth / 2)
	mask := coverage(dst.Bounds(), func(z *vector.Rasterizer) {
		for i := range pts {
			p := pts[i]
			q := pts[(i+1)%len(pts)]

			dx, dy := q[0]-p[0], q[1]-p[1]
			length := float32(math.Hypot(float64(dx), float64(dy)))
			if length == 0 {
				continue
			}
			ux, uy := dx/length*half, dy/length*half
			nx, ny := -uy, ux

			ax, ay := p[0]-ux+0.5, p[1]-uy+0.5
			bx, by := q[0]+ux+0.5, q[1]+uy+0.5

			z.MoveTo(ax+nx, ay+ny)
			z.LineTo(bx+nx, by+ny)
			z.LineTo(bx-nx, by-ny)
			z.LineTo(ax-nx, ay-ny)
			z.ClosePath()
		}
	})
	paint(dst, mask, c)
}

// coverage 把路径光栅化为抗锯齿覆盖率蒙版
func coverage(bounds image.Rectangle, path func(z *vector.Rasterizer)) *image.Alpha {
	w, h := bounds.Dx(), bounds.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	z := vector.NewRasterizer(w, h)
	path(z)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// paint 按覆盖率把颜色写入 dst：dst = dst*(1-m) + c*m
//
// 与 draw.Over 不同，覆盖率为 1 的像素被 c 直接替换（包括 alpha），
// 半透明颜色不会与下面已有的内容叠加。
func paint(dst *image.RGBA, mask *image.Alpha, c color.NRGBA) {
	sr, sg, sb, sa := c.RGBA()
	b := dst.Bounds()

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m := uint32(mask.Pix[y*mask.Stride+x]) * 0x101
			if m == 0 {
				continue
			}
			inv := 0xffff - m

			i := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			pix := dst.Pix[i : i+4 : i+4]
			pix[0] = uint8((uint32(pix[0])*0x101*inv/0xffff + sr*m/0xffff) >> 8)
			pix[1] = uint8((uint32(pix[1])*0x101*inv/0xffff + sg*m/0xffff) >> 8)
			pix[2] = uint8((uint32(pix[2])*0x101*inv/0xffff + sb*m/0xffff) >> 8)
			pix[3] = uint8((uint32(pix[3])*0x101*inv/0xffff + sa*m/0xffff) >> 8)
		}
	}
}
