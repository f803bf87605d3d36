// Package spritegen 按子弹配置表批量生成精灵图及其 .meta 文件
package spritegen

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gonewx/projgen/internal/registry"
	"github.com/gonewx/projgen/internal/sprite"
	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
	"github.com/gonewx/projgen/pkg/utils"
)

// Generator 精灵图生成器
type Generator struct {
	OutputDir string             // 精灵图输出目录
	WriteMeta bool               // 为缺少 .meta 的精灵图写入 TextureImporter .meta
	Registry  *registry.Registry // 可为 nil
}

// Result 单张精灵图的生成结果
type Result struct {
	Name       string
	SpritePath string
	MetaPath   string // 未写入 .meta 时为空
	GUID       string // 精灵图 GUID（已有 .meta 或新分配），未知时为空
}

// NewGenerator 创建使用默认目录的生成器
func NewGenerator() *Generator {
	return &Generator{OutputDir: config.DefaultSpriteDir}
}

// GenerateAll 依次生成所有精灵图
// 单项失败不会中断其余项，所有错误合并后返回
func (g *Generator) GenerateAll(items []config.ProjectileConfig) ([]*Result, error) {
	results := make([]*Result, 0, len(items))
	var errs []error
	for _, p := range items {
		res, err := g.Generate(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// Generate 生成单张精灵图
func (g *Generator) Generate(p config.ProjectileConfig) (*Result, error) {
	shape, err := sprite.ParseShape(p.Shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	fill, err := config.ParseHexColor(p.Color)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	img, err := sprite.Render(p.Size, fill, shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	spritePath := filepath.Join(g.OutputDir, p.SpriteFile())
	if err := utils.SavePNG(spritePath, img); err != nil {
		return nil, err
	}

	res := &Result{Name: p.Name, SpritePath: spritePath}

	// 已有 .meta 不改写，保证 GUID 稳定
	metaPath := spritePath + ".meta"
	existing, ok, err := unity.ReadMetaGUID(metaPath)
	if err != nil {
		return nil, err
	}
	key := registry.AssetKey(spritePath)
	if ok {
		res.GUID = existing
		if err := g.Registry.Remember(key, existing); err != nil {
			log.Printf("[SpriteGenerator] Warning: %v", err)
		}
		return res, nil
	}

	if !g.WriteMeta {
		return res, nil
	}

	guid, err := g.Registry.Assign(key)
	if err != nil {
		log.Printf("[SpriteGenerator] Warning: %v", err)
	}
	meta, err := unity.RenderTextureMeta(guid, config.PixelsPerUnit)
	if err != nil {
		return nil, err
	}
	if err := unity.WriteMeta(metaPath, meta); err != nil {
		return nil, err
	}

	res.MetaPath = metaPath
	res.GUID = guid
	return res, nil
}
