// cmd/gen_sprites
// 生成子弹占位精灵图（透明背景 PNG，带柔和光晕）
//
// 用法：
//
//	go run ./cmd/gen_sprites [-catalog data/projectiles.yaml] [-out Assets/Sprites/Projectiles] [-meta]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/projgen/internal/registry"
	"github.com/gonewx/projgen/internal/spritegen"
	"github.com/gonewx/projgen/pkg/config"
)

func main() {
	catalogPath := flag.String("catalog", "", "projectile catalog YAML (default: built-in table)")
	outDir := flag.String("out", config.DefaultSpriteDir, "output directory for sprites")
	only := flag.String("only", "", "comma-separated projectile names to generate")
	writeMeta := flag.Bool("meta", false, "write a TextureImporter .meta for sprites that have none")
	useRegistry := flag.Bool("registry", false, "persist GUIDs in the local GUID registry")
	flag.Parse()

	catalog, err := config.LoadProjectileCatalogOrDefault(*catalogPath)
	if err != nil {
		log.Fatalf("加载子弹配置表失败: %v", err)
	}
	items, err := catalog.Filter(config.ParseNameList(*only))
	if err != nil {
		log.Fatalf("筛选子弹失败: %v", err)
	}

	reg := registry.New(nil)
	if *useRegistry {
		reg, err = registry.Open(config.RegistryAppName)
		if err != nil {
			fmt.Printf("⚠️  GUID 注册表不可用，使用临时 GUID: %v\n", err)
		}
	}

	gen := &spritegen.Generator{
		OutputDir: *outDir,
		WriteMeta: *writeMeta,
		Registry:  reg,
	}

	results, err := gen.GenerateAll(items)
	for _, res := range results {
		fmt.Printf("Created %s\n", res.SpritePath)
		if res.MetaPath != "" {
			fmt.Printf("   + %s (guid %s)\n", res.MetaPath, res.GUID)
		}
	}

	if err != nil {
		fmt.Printf("\n❌ %d/%d 精灵图生成失败:\n%v\n", len(items)-len(results), len(items), err)
		os.Exit(1)
	}

	fmt.Printf("\nAll projectile sprites created successfully! (%d)\n", len(results))
}
