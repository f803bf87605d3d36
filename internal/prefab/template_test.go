package prefab

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
)

const testSpriteGUID = "5f1c2d3e4b5a69788796a5b4c3d2e1f0"

func TestRender(t *testing.T) {
	p := config.ProjectileConfig{Name: "FireProjectile", Size: 64, Color: "ff5014ff", Shape: "fire"}
	data := NewTemplateData(p, testSpriteGUID, config.ScriptGUIDPlaceholder)

	out, err := Render(data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	text := string(out)

	ids := unity.NewComponentIDs("FireProjectile")
	for _, want := range []string{
		"%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n",
		fmt.Sprintf("--- !u!1 &%d\nGameObject:", ids.Root),
		fmt.Sprintf("--- !u!4 &%d\nTransform:", ids.Transform),
		fmt.Sprintf("--- !u!212 &%d\nSpriteRenderer:", ids.Sprite),
		fmt.Sprintf("--- !u!50 &%d\nRigidbody2D:", ids.Rigidbody),
		fmt.Sprintf("--- !u!58 &%d\nCircleCollider2D:", ids.Collider),
		fmt.Sprintf("--- !u!114 &%d\nMonoBehaviour:", ids.Script),
		"  m_Name: FireProjectile\n",
		"  m_TagString: Projectile\n",
		"  m_SortingOrder: 15\n",
		"  m_Sprite: {fileID: 21300000, guid: " + testSpriteGUID + ", type: 3}\n",
		"  m_Size: {x: 0.64, y: 0.64}\n",
		"  m_BodyType: 1\n",
		"  m_GravityScale: 0\n",
		"  m_IsTrigger: 1\n",
		"  m_Radius: 0.15\n",
		"  m_Script: {fileID: 11500000, guid: YOUR_PROJECTILE_SCRIPT_GUID, type: 3}\n",
		fmt.Sprintf("  spriteRenderer: {fileID: %d}\n", ids.Sprite),
		fmt.Sprintf("  rb2D: {fileID: %d}\n", ids.Rigidbody),
		fmt.Sprintf("  projectileCollider: {fileID: %d}\n", ids.Collider),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prefab missing %q", want)
		}
	}

	// 每个组件都挂在根对象上
	if n := strings.Count(text, fmt.Sprintf("m_GameObject: {fileID: %d}", ids.Root)); n != 5 {
		t.Errorf("expected 5 components referencing the root, got %d", n)
	}
}

func TestRender_Deterministic(t *testing.T) {
	p := config.ProjectileConfig{Name: "IceProjectile", Size: 64, Color: "96dcffff", Shape: "diamond"}
	a, err := Render(NewTemplateData(p, testSpriteGUID, config.DefaultProjectileScriptGUID))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, _ := Render(NewTemplateData(p, testSpriteGUID, config.DefaultProjectileScriptGUID))
	if string(a) != string(b) {
		t.Errorf("rendering the same prefab twice produced different output")
	}
}

func TestRender_Errors(t *testing.T) {
	p := config.ProjectileConfig{Name: "FireProjectile", Size: 64}

	if _, err := Render(NewTemplateData(config.ProjectileConfig{}, testSpriteGUID, "x")); err == nil {
		t.Errorf("expected error for empty name")
	}
	_, err := Render(NewTemplateData(config.ProjectileConfig{Name: "Foo[[1]]", Size: 64}, testSpriteGUID, "x"))
	if err == nil || !strings.Contains(err.Error(), "cannot contain") {
		t.Errorf("expected name error for bracketed name, got %v", err)
	}
	if _, err := Render(NewTemplateData(p, "", "x")); err == nil {
		t.Errorf("expected error for empty sprite GUID")
	}
	if _, err := Render(NewTemplateData(p, testSpriteGUID, "")); err == nil {
		t.Errorf("expected error for empty script GUID")
	}
}

func TestNewTemplateData_SpriteSize(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{64, "0.64"},
		{100, "1"},
		{32, "0.32"},
		{128, "1.28"},
	}
	for _, tt := range tests {
		data := NewTemplateData(config.ProjectileConfig{Name: "P", Size: tt.size}, testSpriteGUID, "x")
		if data.SpriteSize != tt.want {
			t.Errorf("size %d: SpriteSize = %q, want %q", tt.size, data.SpriteSize, tt.want)
		}
	}
}
