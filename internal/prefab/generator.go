// Package prefab 生成、修补和校验子弹预制体（Unity .prefab）
package prefab

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/projgen/internal/registry"
	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
)

// Generator 预制体生成器
type Generator struct {
	SpriteDir  string             // 精灵图及其 .meta 所在目录
	OutputDir  string             // 预制体输出目录
	ScriptGUID string             // Projectile 脚本 GUID，为空时写入占位符
	KeepGUIDs  bool               // 已存在的 .prefab.meta 保留原 GUID
	Registry   *registry.Registry // 可为 nil
}

// Result 单个预制体的生成结果
type Result struct {
	Name        string
	PrefabPath  string
	MetaPath    string
	SpriteGUID  string
	PrefabGUID  string
	SpriteFound bool // 是否找到了精灵图的 GUID（否则使用空 GUID）
}

// NewGenerator 创建使用默认目录的生成器
func NewGenerator() *Generator {
	return &Generator{
		SpriteDir: config.DefaultSpriteDir,
		OutputDir: config.DefaultPrefabDir,
		KeepGUIDs: true,
	}
}

// GenerateAll 依次生成所有预制体
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

// Generate 生成单个预制体及其 .meta 文件
func (g *Generator) Generate(p config.ProjectileConfig) (*Result, error) {
	spriteGUID, found := g.lookupSpriteGUID(p)
	if !found {
		log.Printf("[PrefabGenerator] Warning: no sprite GUID for %s, using null GUID", p.Name)
	}

	scriptGUID := g.ScriptGUID
	if scriptGUID == "" {
		scriptGUID = config.ScriptGUIDPlaceholder
	}

	content, err := Render(NewTemplateData(p, spriteGUID, scriptGUID))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", g.OutputDir, err)
	}

	prefabPath := filepath.Join(g.OutputDir, p.PrefabFile())
	if err := os.WriteFile(prefabPath, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write prefab %s: %w", prefabPath, err)
	}

	metaPath := prefabPath + ".meta"
	prefabGUID, err := g.prefabGUID(prefabPath, metaPath)
	if err != nil {
		return nil, err
	}

	meta, err := unity.RenderPrefabMeta(prefabGUID)
	if err != nil {
		return nil, err
	}
	if err := unity.WriteMeta(metaPath, meta); err != nil {
		return nil, err
	}

	return &Result{
		Name:        p.Name,
		PrefabPath:  prefabPath,
		MetaPath:    metaPath,
		SpriteGUID:  spriteGUID,
		PrefabGUID:  prefabGUID,
		SpriteFound: found,
	}, nil
}

// lookupSpriteGUID 从精灵图 .meta 读取 GUID，缺失时返回空 GUID
// 不查注册表：没有 .meta 的精灵图由 Unity 导入时分配新 GUID（恢复 GUID 用 gen_sprites -meta）
func (g *Generator) lookupSpriteGUID(p config.ProjectileConfig) (string, bool) {
	spritePath := filepath.Join(g.SpriteDir, p.SpriteFile())

	guid, ok, err := unity.ReadMetaGUID(spritePath + ".meta")
	if err != nil {
		log.Printf("[PrefabGenerator] Warning: %v", err)
	}
	if ok {
		return guid, true
	}

	return config.NullSpriteGUID, false
}

// prefabGUID 决定预制体 .meta 的 GUID
// KeepGUIDs 时优先沿用已有 .meta，其次注册表，最后生成新 GUID
func (g *Generator) prefabGUID(prefabPath, metaPath string) (string, error) {
	key := registry.AssetKey(prefabPath)

	if g.KeepGUIDs {
		guid, ok, err := unity.ReadMetaGUID(metaPath)
		if err != nil {
			return "", err
		}
		if ok && unity.IsGUID(guid) {
			if err := g.Registry.Remember(key, guid); err != nil {
				log.Printf("[PrefabGenerator] Warning: %v", err)
			}
			return guid, nil
		}
		guid, err = g.Registry.Assign(key)
		if err != nil {
			log.Printf("[PrefabGenerator] Warning: %v", err)
		}
		return guid, nil
	}

	guid := unity.NewGUID()
	if err := g.Registry.Remember(key, guid); err != nil {
		log.Printf("[PrefabGenerator] Warning: %v", err)
	}
	return guid, nil
}
