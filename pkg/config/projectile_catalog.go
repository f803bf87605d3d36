package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/projgen/internal/sprite"
)

// ProjectileConfig 单个子弹的配置
// 精灵图生成器和预制体生成器共用同一张表
type ProjectileConfig struct {
	Name  string `yaml:"name"`  // 资源名，同时决定文件名
	Size  int    `yaml:"size"`  // 精灵图边长（像素）
	Color string `yaml:"color"` // RRGGBBAA 或 RRGGBB 十六进制颜色
	Shape string `yaml:"shape"` // circle/arrow/star/diamond/bolt/fire
}

// ProjectileCatalog 子弹配置表
type ProjectileCatalog struct {
	Projectiles []ProjectileConfig `yaml:"projectiles"`
}

// DefaultProjectileCatalog 返回内置的子弹配置表
func DefaultProjectileCatalog() *ProjectileCatalog {
	return &ProjectileCatalog{
		Projectiles: []ProjectileConfig{
			{Name: "FireProjectile", Size: 64, Color: "ff5014ff", Shape: "fire"},
			{Name: "WaterProjectile", Size: 64, Color: "3c96ffff", Shape: "circle"},
			{Name: "EarthProjectile", Size: 64, Color: "8b5a2bff", Shape: "diamond"},
			{Name: "AirProjectile", Size: 64, Color: "c8e6ffff", Shape: "arrow"},
			{Name: "LightningProjectile", Size: 64, Color: "ffff64ff", Shape: "bolt"},
			{Name: "IceProjectile", Size: 64, Color: "96dcffff", Shape: "diamond"},
			{Name: "PoisonProjectile", Size: 64, Color: "64c832ff", Shape: "circle"},
			{Name: "DarkProjectile", Size: 64, Color: "783296ff", Shape: "star"},
			{Name: "HolyProjectile", Size: 64, Color: "fff096ff", Shape: "star"},
			{Name: "MagicProjectile", Size: 64, Color: "c864ffff", Shape: "circle"},
			{Name: "ExplosiveProjectile", Size: 64, Color: "ff9600ff", Shape: "circle"},
			{Name: "SniperProjectile", Size: 64, Color: "dcdcdcff", Shape: "arrow"},
		},
	}
}

// LoadProjectileCatalog 从 YAML 文件加载子弹配置表
func LoadProjectileCatalog(filePath string) (*ProjectileCatalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read projectile catalog: %w", err)
	}
	return ParseProjectileCatalog(data)
}

// LoadProjectileCatalogOrDefault filePath 为空时返回内置配置表
func LoadProjectileCatalogOrDefault(filePath string) (*ProjectileCatalog, error) {
	if filePath == "" {
		return DefaultProjectileCatalog(), nil
	}
	return LoadProjectileCatalog(filePath)
}

// ParseNameList 解析逗号分隔的名称列表，忽略空项
func ParseNameList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseProjectileCatalog 解析 YAML 格式的子弹配置表并验证
func ParseProjectileCatalog(data []byte) (*ProjectileCatalog, error) {
	var catalog ProjectileCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse projectile catalog YAML: %w", err)
	}

	if err := validateProjectileCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid projectile catalog: %w", err)
	}

	return &catalog, nil
}

// validateProjectileCatalog 验证配置表的有效性
func validateProjectileCatalog(catalog *ProjectileCatalog) error {
	if len(catalog.Projectiles) == 0 {
		return fmt.Errorf("projectiles cannot be empty")
	}

	// 文件名由 Name 推导，必须在输出目录内唯一
	seen := make(map[string]bool, len(catalog.Projectiles))
	for i, p := range catalog.Projectiles {
		if p.Name == "" {
			return fmt.Errorf("projectile #%d: name cannot be empty", i+1)
		}
		if strings.ContainsAny(p.Name, `/\:*?"<>| `) {
			return fmt.Errorf("projectile %s: name must be a plain file name", p.Name)
		}
		// 名称会写入预制体模板，不能含模板分隔符
		if strings.ContainsAny(p.Name, "[]") {
			return fmt.Errorf("projectile %s: name cannot contain '[' or ']'", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate projectile name: %s", p.Name)
		}
		seen[p.Name] = true

		if p.Size < MinSpriteSize || p.Size > MaxSpriteSize {
			return fmt.Errorf("projectile %s: size must be between %d and %d, got %d",
				p.Name, MinSpriteSize, MaxSpriteSize, p.Size)
		}
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("projectile %s: %w", p.Name, err)
		}
		if _, err := sprite.ParseShape(p.Shape); err != nil {
			if hint := closestMatch(p.Shape, sprite.ShapeNames()); hint != "" {
				return fmt.Errorf("projectile %s: unknown shape %q (did you mean %q?)", p.Name, p.Shape, hint)
			}
			return fmt.Errorf("projectile %s: %w", p.Name, err)
		}
	}

	return nil
}

// Filter 按名称筛选配置项，names 为空时返回全部
// 未知名称返回错误并附带最接近的候选
func (c *ProjectileCatalog) Filter(names []string) ([]ProjectileConfig, error) {
	if len(names) == 0 {
		return c.Projectiles, nil
	}

	byName := make(map[string]ProjectileConfig, len(c.Projectiles))
	all := make([]string, 0, len(c.Projectiles))
	for _, p := range c.Projectiles {
		byName[p.Name] = p
		all = append(all, p.Name)
	}

	result := make([]ProjectileConfig, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			if hint := closestMatch(name, all); hint != "" {
				return nil, fmt.Errorf("unknown projectile %q (did you mean %q?)", name, hint)
			}
			return nil, fmt.Errorf("unknown projectile %q", name)
		}
		result = append(result, p)
	}
	return result, nil
}

// NRGBA 返回解析后的颜色，颜色非法时返回不透明白色
// 经过 validateProjectileCatalog 的配置不会出现非法颜色
func (p ProjectileConfig) NRGBA() color.NRGBA {
	c, err := ParseHexColor(p.Color)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// SpriteFile 精灵图文件名
func (p ProjectileConfig) SpriteFile() string {
	return p.Name + ".png"
}

// PrefabFile 预制体文件名
func (p ProjectileConfig) PrefabFile() string {
	return p.Name + ".prefab"
}

// ParseHexColor 解析 RRGGBB 或 RRGGBBAA 格式的颜色（可带 # 前缀）
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color must be RRGGBB or RRGGBBAA, got %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// closestMatch 返回编辑距离最小的候选，距离过大时返回空字符串
func closestMatch(input string, candidates []string) string {
	input = strings.ToLower(input)
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(cand))
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}

	// 超过一半长度的差异不再视为拼写错误
	if bestDist < 0 || bestDist > (len(best)+1)/2 {
		return ""
	}
	return best
}
