// cmd/sprite_preview
// 子弹精灵图预览窗口
//
// 默认直接在内存中按配置表渲染精灵图；指定 -dir 时改为加载已生成的 PNG。
//
// 操作：
//   - Space: 切换背景（深色 / 棋盘格），检查透明度与光晕
//   - Esc: 退出
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/projgen/internal/sprite"
	"github.com/gonewx/projgen/pkg/config"
	"github.com/gonewx/projgen/pkg/utils"
)

const (
	labelHeight  = 28
	cellPadding  = 12
	checkerCell  = 8
	windowMargin = 16
)

// previewCell 网格中的一个精灵图
type previewCell struct {
	name  string
	shape string
	size  int
	image *ebiten.Image
}

// PreviewGame 预览窗口
type PreviewGame struct {
	cells    []previewCell
	columns  int
	scale    float64
	cellSize int
	checker  bool

	width  int
	height int
}

func main() {
	catalogPath := flag.String("catalog", "", "projectile catalog YAML (default: built-in table)")
	dir := flag.String("dir", "", "load generated PNGs from this directory instead of rendering in memory")
	columns := flag.Int("columns", 4, "grid columns")
	scale := flag.Float64("scale", 2.0, "sprite scale")
	flag.Parse()

	catalog, err := config.LoadProjectileCatalogOrDefault(*catalogPath)
	if err != nil {
		log.Fatalf("加载子弹配置表失败: %v", err)
	}

	game, err := NewPreviewGame(catalog.Projectiles, *dir, *columns, *scale)
	if err != nil {
		log.Fatalf("初始化预览失败: %v", err)
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Projectile Sprite Preview")
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

// NewPreviewGame 加载或渲染所有精灵图并计算窗口尺寸
func NewPreviewGame(items []config.ProjectileConfig, dir string, columns int, scale float64) (*PreviewGame, error) {
	if columns < 1 {
		columns = 1
	}
	if scale <= 0 {
		scale = 1
	}

	g := &PreviewGame{columns: columns, scale: scale}
	for _, p := range items {
		img, err := loadSprite(p, dir)
		if err != nil {
			log.Printf("警告: 跳过 %s: %v", p.Name, err)
			continue
		}
		g.cells = append(g.cells, previewCell{
			name:  p.Name,
			shape: p.Shape,
			size:  p.Size,
			image: ebiten.NewImageFromImage(img),
		})
		if s := int(float64(p.Size)*scale) + cellPadding*2; s > g.cellSize {
			g.cellSize = s
		}
	}
	if len(g.cells) == 0 {
		return nil, fmt.Errorf("没有可预览的精灵图")
	}

	// 名称需要足够的宽度
	if g.cellSize < 160 {
		g.cellSize = 160
	}

	cols := columns
	if len(g.cells) < cols {
		cols = len(g.cells)
	}
	rows := (len(g.cells) + columns - 1) / columns
	g.width = windowMargin*2 + cols*g.cellSize
	g.height = windowMargin*2 + rows*(g.cellSize+labelHeight)

	log.Printf("✓ 加载 %d 张精灵图", len(g.cells))
	return g, nil
}

// loadSprite dir 为空时内存渲染，否则读取 PNG
func loadSprite(p config.ProjectileConfig, dir string) (image.Image, error) {
	if dir != "" {
		return utils.LoadPNG(filepath.Join(dir, p.SpriteFile()))
	}

	shape, err := sprite.ParseShape(p.Shape)
	if err != nil {
		return nil, err
	}
	return sprite.Render(p.Size, p.NRGBA(), shape)
}

// Update 处理输入
func (g *PreviewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.checker = !g.checker
	}
	return nil
}

// Draw 绘制网格
func (g *PreviewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1C, G: 0x23, B: 0x29, A: 0xFF})

	for i, cell := range g.cells {
		col := i % g.columns
		row := i / g.columns
		x := windowMargin + col*g.cellSize
		y := windowMargin + row*(g.cellSize+labelHeight)

		if g.checker {
			drawChecker(screen, x, y, g.cellSize)
		} else {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(g.cellSize), float32(g.cellSize),
				color.RGBA{R: 0x10, G: 0x16, B: 0x1A, A: 0xFF}, false)
		}

		drawn := float64(cell.size) * g.scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate(float64(x)+(float64(g.cellSize)-drawn)/2, float64(y)+(float64(g.cellSize)-drawn)/2)
		screen.DrawImage(cell.image, op)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s\n%s %dpx", cell.name, cell.shape, cell.size), x, y+g.cellSize)
	}
}

// Layout 返回逻辑屏幕尺寸
func (g *PreviewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// drawChecker 绘制棋盘格背景
func drawChecker(screen *ebiten.Image, x, y, size int) {
	light := color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	dark := color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
	for cy := 0; cy < size; cy += checkerCell {
		for cx := 0; cx < size; cx += checkerCell {
			c := light
			if (cx/checkerCell+cy/checkerCell)%2 == 1 {
				c = dark
			}
			w, h := checkerCell, checkerCell
			if cx+w > size {
				w = size - cx
			}
			if cy+h > size {
				h = size - cy
			}
			vector.DrawFilledRect(screen, float32(x+cx), float32(y+cy), float32(w), float32(h), c, false)
		}
	}
}
