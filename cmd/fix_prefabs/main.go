// cmd/fix_prefabs
// 将已生成预制体中的脚本 GUID 占位符替换为真实的 Projectile 脚本 GUID
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/projgen/internal/prefab"
	"github.com/gonewx/projgen/pkg/config"
)

func main() {
	catalogPath := flag.String("catalog", "", "projectile catalog YAML (default: built-in table)")
	prefabDir := flag.String("dir", config.DefaultPrefabDir, "directory containing generated prefabs")
	only := flag.String("only", "", "comma-separated projectile names to patch")
	guid := flag.String("guid", "", "Projectile script GUID (default: read from -script-meta)")
	scriptMeta := flag.String("script-meta", config.ProjectileScriptMetaPath, "Projectile.cs.meta to read the script GUID from")
	flag.Parse()

	catalog, err := config.LoadProjectileCatalogOrDefault(*catalogPath)
	if err != nil {
		log.Fatalf("加载子弹配置表失败: %v", err)
	}
	items, err := catalog.Filter(config.ParseNameList(*only))
	if err != nil {
		log.Fatalf("筛选子弹失败: %v", err)
	}

	scriptGUID, source, err := prefab.ResolveScriptGUID(*guid, *scriptMeta)
	if err != nil {
		log.Fatalf("无法确定脚本 GUID: %v", err)
	}
	fmt.Printf("🔧 Projectile script GUID: %s (%s)\n\n", scriptGUID, source)

	var updated, unchanged, missing, failed int
	for _, p := range items {
		path := filepath.Join(*prefabDir, p.PrefabFile())
		res, err := prefab.Patch(path, config.ScriptGUIDPlaceholder, scriptGUID)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p.PrefabFile(), err)
			failed++
			continue
		}

		switch res.Status {
		case prefab.PatchUpdated:
			fmt.Printf("✓ Updated %s (%d)\n", p.PrefabFile(), res.Replacements)
			updated++
		case prefab.PatchUnchanged:
			fmt.Printf("- %s already up to date\n", p.PrefabFile())
			unchanged++
		case prefab.PatchMissing:
			fmt.Printf("✗ %s not found\n", p.PrefabFile())
			missing++
		}
	}

	fmt.Printf("\n✅ 更新: %d, 无需修改: %d, 缺失: %d, 失败: %d\n", updated, unchanged, missing, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
