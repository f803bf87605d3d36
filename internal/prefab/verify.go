package prefab

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
	"github.com/gonewx/projgen/pkg/utils"
)

// Severity 问题级别
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue 校验发现的问题
type Issue struct {
	Name     string // 子弹名称，目录级问题为文件名
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Name, i.Message)
}

// spriteRefPattern 匹配 SpriteRenderer 的精灵图引用
var spriteRefPattern = regexp.MustCompile(`m_Sprite: \{fileID: 21300000, guid: ([0-9A-Za-z_]+), type: 3\}`)

// Verify 检查配置表中每一项的生成结果
//
// 检查项：
//   - 精灵图 .png 存在且尺寸与配置一致
//   - 精灵图 .meta 存在（缺失为警告，预制体会引用空 GUID）
//   - 预制体与其 .meta 存在，.meta 中 GUID 合法
//   - 预制体引用的精灵图 GUID 与精灵图 .meta 一致
//   - 预制体中不再有脚本 GUID 占位符
func Verify(items []config.ProjectileConfig, spriteDir, prefabDir string) []Issue {
	var issues []Issue
	add := func(name string, sev Severity, format string, args ...interface{}) {
		issues = append(issues, Issue{Name: name, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	for _, p := range items {
		spritePath := filepath.Join(spriteDir, p.SpriteFile())
		img, err := utils.LoadPNG(spritePath)
		if err != nil {
			add(p.Name, SeverityError, "sprite: %v", err)
		} else if b := img.Bounds(); b.Dx() != p.Size || b.Dy() != p.Size {
			add(p.Name, SeverityError, "sprite is %dx%d, expected %dx%d", b.Dx(), b.Dy(), p.Size, p.Size)
		}

		spriteGUID, spriteMeta, err := unity.ReadMetaGUID(spritePath + ".meta")
		if err != nil {
			add(p.Name, SeverityError, "sprite meta: %v", err)
		} else if !spriteMeta {
			add(p.Name, SeverityWarning, "sprite meta missing: %s.meta", spritePath)
		}

		prefabPath := filepath.Join(prefabDir, p.PrefabFile())
		content, err := os.ReadFile(prefabPath)
		if err != nil {
			add(p.Name, SeverityError, "prefab: %v", err)
		} else {
			if n := bytes.Count(content, []byte(config.ScriptGUIDPlaceholder)); n > 0 {
				add(p.Name, SeverityError, "prefab still contains %d %s placeholder(s)", n, config.ScriptGUIDPlaceholder)
			}

			m := spriteRefPattern.FindSubmatch(content)
			switch {
			case m == nil:
				add(p.Name, SeverityError, "prefab has no sprite reference")
			case string(m[1]) == config.NullSpriteGUID:
				add(p.Name, SeverityWarning, "prefab references the null sprite GUID")
			case spriteMeta && string(m[1]) != spriteGUID:
				add(p.Name, SeverityError, "prefab references sprite %s, sprite meta has %s", m[1], spriteGUID)
			}
		}

		prefabGUID, ok, err := unity.ReadMetaGUID(prefabPath + ".meta")
		switch {
		case err != nil:
			add(p.Name, SeverityError, "prefab meta: %v", err)
		case !ok:
			add(p.Name, SeverityError, "prefab meta missing: %s.meta", prefabPath)
		case !unity.IsGUID(prefabGUID):
			add(p.Name, SeverityError, "prefab meta has malformed GUID %q", prefabGUID)
		}
	}

	return issues
}

// FindOrphans 列出输出目录中不属于配置表的 .png/.prefab 文件
// 只在校验完整配置表时有意义
func FindOrphans(items []config.ProjectileConfig, spriteDir, prefabDir string) []Issue {
	issues := findOrphans(items, spriteDir, ".png", config.ProjectileConfig.SpriteFile)
	return append(issues, findOrphans(items, prefabDir, ".prefab", config.ProjectileConfig.PrefabFile)...)
}

// HasErrors 是否存在错误级别的问题
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// findOrphans 列出目录中不属于配置表的同类型文件
func findOrphans(items []config.ProjectileConfig, dir, ext string, fileName func(config.ProjectileConfig) string) []Issue {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	expected := make(map[string]bool, len(items))
	for _, p := range items {
		expected[fileName(p)] = true
	}

	var orphans []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if !expected[e.Name()] {
			orphans = append(orphans, e.Name())
		}
	}
	sort.Strings(orphans)

	issues := make([]Issue, 0, len(orphans))
	for _, name := range orphans {
		issues = append(issues, Issue{
			Name:     name,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("not in the projectile catalog (%s)", dir),
		})
	}
	return issues
}
