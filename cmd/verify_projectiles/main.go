// cmd/verify_projectiles
// 校验子弹精灵图与预制体是否完整生成：
// 每一项恰好对应一组 .png/.prefab 及其 .meta，预制体引用正确的精灵图，且没有残留占位符
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/projgen/internal/prefab"
	"github.com/gonewx/projgen/pkg/config"
)

func main() {
	catalogPath := flag.String("catalog", "", "projectile catalog YAML (default: built-in table)")
	spriteDir := flag.String("sprites", config.DefaultSpriteDir, "sprite directory")
	prefabDir := flag.String("prefabs", config.DefaultPrefabDir, "prefab directory")
	only := flag.String("only", "", "comma-separated projectile names to check")
	flag.Parse()

	catalog, err := config.LoadProjectileCatalogOrDefault(*catalogPath)
	if err != nil {
		log.Fatalf("加载子弹配置表失败: %v", err)
	}
	names := config.ParseNameList(*only)
	items, err := catalog.Filter(names)
	if err != nil {
		log.Fatalf("筛选子弹失败: %v", err)
	}

	fmt.Println("==========================================================")
	fmt.Printf("子弹资源校验: %d 项\n", len(items))
	fmt.Printf("  精灵图: %s\n", *spriteDir)
	fmt.Printf("  预制体: %s\n", *prefabDir)
	fmt.Println("==========================================================")

	issues := prefab.Verify(items, *spriteDir, *prefabDir)
	if len(names) == 0 {
		issues = append(issues, prefab.FindOrphans(items, *spriteDir, *prefabDir)...)
	}

	errorCount := 0
	for _, issue := range issues {
		marker := "⚠️ "
		if issue.Severity == prefab.SeverityError {
			marker = "❌"
			errorCount++
		}
		fmt.Printf("%s %s: %s\n", marker, issue.Name, issue.Message)
	}

	if prefab.HasErrors(issues) {
		fmt.Printf("\n❌ 校验失败: %d 个错误, %d 个警告\n", errorCount, len(issues)-errorCount)
		os.Exit(1)
	}
	fmt.Printf("\n✅ 校验通过 (%d 个警告)\n", len(issues))
}
