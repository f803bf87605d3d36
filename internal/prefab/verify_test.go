package prefab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/projgen/internal/spritegen"
	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
)

// buildAssets 在临时目录生成精灵图、精灵图 .meta 与预制体
func buildAssets(t *testing.T, items []config.ProjectileConfig, scriptGUID string) (spriteDir, prefabDir string) {
	t.Helper()
	root := t.TempDir()
	spriteDir = filepath.Join(root, "Sprites")
	prefabDir = filepath.Join(root, "Prefabs")

	sg := spritegen.NewGenerator()
	sg.OutputDir = spriteDir
	sg.WriteMeta = true
	if _, err := sg.GenerateAll(items); err != nil {
		t.Fatalf("sprite generation failed: %v", err)
	}

	pg := NewGenerator()
	pg.SpriteDir = spriteDir
	pg.OutputDir = prefabDir
	pg.ScriptGUID = scriptGUID
	if _, err := pg.GenerateAll(items); err != nil {
		t.Fatalf("prefab generation failed: %v", err)
	}
	return spriteDir, prefabDir
}

func testItems(t *testing.T) []config.ProjectileConfig {
	items, err := config.DefaultProjectileCatalog().Filter([]string{"FireProjectile", "LightningProjectile"})
	if err != nil {
		t.Fatal(err)
	}
	return items
}

func TestVerify_Clean(t *testing.T) {
	items := testItems(t)
	spriteDir, prefabDir := buildAssets(t, items, config.DefaultProjectileScriptGUID)

	if issues := Verify(items, spriteDir, prefabDir); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
	if issues := FindOrphans(items, spriteDir, prefabDir); len(issues) != 0 {
		t.Errorf("expected no orphans, got %v", issues)
	}
}

func TestVerify_PlaceholderIsError(t *testing.T) {
	items := testItems(t)
	spriteDir, prefabDir := buildAssets(t, items, "")

	issues := Verify(items, spriteDir, prefabDir)
	if !HasErrors(issues) {
		t.Fatalf("expected placeholder errors")
	}
	if len(issues) != 2 || !strings.Contains(issues[0].Message, config.ScriptGUIDPlaceholder) {
		t.Errorf("unexpected issues: %v", issues)
	}

	// 修补后校验通过
	for _, p := range items {
		if _, err := Patch(filepath.Join(prefabDir, p.PrefabFile()), config.ScriptGUIDPlaceholder, config.DefaultProjectileScriptGUID); err != nil {
			t.Fatal(err)
		}
	}
	if issues := Verify(items, spriteDir, prefabDir); len(issues) != 0 {
		t.Errorf("expected no issues after patching, got %v", issues)
	}
}

func TestVerify_SpriteGUIDMismatch(t *testing.T) {
	items := testItems(t)
	spriteDir, prefabDir := buildAssets(t, items, config.DefaultProjectileScriptGUID)

	// 精灵图重新导入后 GUID 改变
	meta, _ := unity.RenderTextureMeta(unity.NewGUID(), config.PixelsPerUnit)
	if err := unity.WriteMeta(filepath.Join(spriteDir, "FireProjectile.png.meta"), meta); err != nil {
		t.Fatal(err)
	}

	issues := Verify(items, spriteDir, prefabDir)
	if len(issues) != 1 || issues[0].Name != "FireProjectile" || issues[0].Severity != SeverityError {
		t.Errorf("expected one mismatch error, got %v", issues)
	}
}

func TestVerify_MissingFiles(t *testing.T) {
	items := testItems(t)
	spriteDir, prefabDir := buildAssets(t, items, config.DefaultProjectileScriptGUID)

	if err := os.Remove(filepath.Join(prefabDir, "LightningProjectile.prefab.meta")); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(spriteDir, "FireProjectile.png")); err != nil {
		t.Fatal(err)
	}

	issues := Verify(items, spriteDir, prefabDir)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if issues[0].Name != "FireProjectile" || !strings.HasPrefix(issues[0].Message, "sprite:") {
		t.Errorf("unexpected first issue %v", issues[0])
	}
	if issues[1].Name != "LightningProjectile" || !strings.Contains(issues[1].Message, "prefab meta missing") {
		t.Errorf("unexpected second issue %v", issues[1])
	}
}

func TestVerify_NullSpriteGUIDIsWarning(t *testing.T) {
	items := testItems(t)[:1]
	root := t.TempDir()

	pg := NewGenerator()
	pg.SpriteDir = filepath.Join(root, "Sprites")
	pg.OutputDir = filepath.Join(root, "Prefabs")
	pg.ScriptGUID = config.DefaultProjectileScriptGUID
	if _, err := pg.GenerateAll(items); err != nil {
		t.Fatal(err)
	}

	// 精灵图存在但没有 .meta
	sg := spritegen.NewGenerator()
	sg.OutputDir = pg.SpriteDir
	if _, err := sg.GenerateAll(items); err != nil {
		t.Fatal(err)
	}

	issues := Verify(items, pg.SpriteDir, pg.OutputDir)
	if HasErrors(issues) {
		t.Errorf("expected warnings only, got %v", issues)
	}
	if len(issues) != 2 {
		t.Errorf("expected meta-missing and null-GUID warnings, got %v", issues)
	}
}

func TestFindOrphans(t *testing.T) {
	items := testItems(t)
	spriteDir, prefabDir := buildAssets(t, items, config.DefaultProjectileScriptGUID)

	if err := os.WriteFile(filepath.Join(spriteDir, "OldProjectile.png"), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(prefabDir, "OldProjectile.prefab"), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	issues := FindOrphans(items, spriteDir, prefabDir)
	if len(issues) != 2 {
		t.Fatalf("expected 2 orphans, got %v", issues)
	}
	if issues[0].Name != "OldProjectile.png" || issues[1].Name != "OldProjectile.prefab" {
		t.Errorf("unexpected orphans %v", issues)
	}
	if HasErrors(issues) {
		t.Errorf("orphans should be warnings")
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{Name: "FireProjectile", Severity: SeverityWarning, Message: "sprite meta missing"}
	if got := i.String(); got != "[warning] FireProjectile: sprite meta missing" {
		t.Errorf("String() = %q", got)
	}
}
