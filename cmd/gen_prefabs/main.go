// cmd/gen_prefabs
// 根据子弹配置表生成 Unity 预制体（.prefab + .prefab.meta）
//
// 精灵图 GUID 从 <sprites>/<Name>.png.meta 读取，找不到时使用空 GUID。
// 未指定 -script-guid 时写入占位符，之后运行 fix_prefabs 替换。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/projgen/internal/prefab"
	"github.com/gonewx/projgen/internal/registry"
	"github.com/gonewx/projgen/pkg/config"
)

func main() {
	catalogPath := flag.String("catalog", "", "projectile catalog YAML (default: built-in table)")
	spriteDir := flag.String("sprites", config.DefaultSpriteDir, "directory containing sprite .png.meta files")
	outDir := flag.String("out", config.DefaultPrefabDir, "output directory for prefabs")
	only := flag.String("only", "", "comma-separated projectile names to generate")
	scriptGUID := flag.String("script-guid", "", "Projectile script GUID (default: leave placeholder for fix_prefabs)")
	keepGUIDs := flag.Bool("keep-guids", true, "reuse GUIDs of existing .prefab.meta files")
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

	if *scriptGUID != "" {
		if _, _, err := prefab.ResolveScriptGUID(*scriptGUID, ""); err != nil {
			log.Fatalf("脚本 GUID 无效: %v", err)
		}
	}

	reg := registry.New(nil)
	if *useRegistry {
		reg, err = registry.Open(config.RegistryAppName)
		if err != nil {
			fmt.Printf("⚠️  GUID 注册表不可用，使用临时 GUID: %v\n", err)
		}
	}

	gen := &prefab.Generator{
		SpriteDir:  *spriteDir,
		OutputDir:  *outDir,
		ScriptGUID: *scriptGUID,
		KeepGUIDs:  *keepGUIDs,
		Registry:   reg,
	}

	results, err := gen.GenerateAll(items)
	missingSprites := 0
	for _, res := range results {
		fmt.Printf("Created %s\n", res.PrefabPath)
		if !res.SpriteFound {
			missingSprites++
		}
	}

	if err != nil {
		fmt.Printf("\n❌ %d/%d 预制体生成失败:\n%v\n", len(items)-len(results), len(items), err)
		os.Exit(1)
	}

	fmt.Printf("\nAll projectile prefabs created successfully! (%d)\n", len(results))
	if missingSprites > 0 {
		fmt.Printf("⚠️  %d 个预制体未找到精灵图 .meta，引用了空 GUID\n", missingSprites)
	}
	if *scriptGUID == "" {
		fmt.Println("\nNOTE: Projectile script GUID is still a placeholder.")
		fmt.Println("Run fix_prefabs to replace it, or open any prefab in Unity and assign the Projectile component.")
	}
}
