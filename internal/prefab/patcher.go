package prefab

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
)

// PatchStatus 修补结果
type PatchStatus int

const (
	PatchUpdated   PatchStatus = iota // 已替换占位符并写回
	PatchUnchanged                    // 文件中没有占位符
	PatchMissing                      // 文件不存在，已跳过
)

func (s PatchStatus) String() string {
	switch s {
	case PatchUpdated:
		return "updated"
	case PatchUnchanged:
		return "unchanged"
	case PatchMissing:
		return "missing"
	}
	return fmt.Sprintf("PatchStatus(%d)", int(s))
}

// PatchResult 单个文件的修补结果
type PatchResult struct {
	Path         string
	Status       PatchStatus
	Replacements int
}

// Patch 将文件中所有 placeholder 字面量替换为 value 并原地写回
// 文件不存在时返回 PatchMissing 而非错误
func Patch(path, placeholder, value string) (PatchResult, error) {
	result := PatchResult{Path: path}

	if placeholder == "" {
		return result, fmt.Errorf("placeholder cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = PatchMissing
			return result, nil
		}
		return result, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", path, err)
	}

	n := bytes.Count(content, []byte(placeholder))
	if n == 0 {
		result.Status = PatchUnchanged
		return result, nil
	}

	updated := bytes.ReplaceAll(content, []byte(placeholder), []byte(value))
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", path, err)
	}

	result.Status = PatchUpdated
	result.Replacements = n
	return result, nil
}

// ResolveScriptGUID 确定要写入预制体的 Projectile 脚本 GUID
//
// 优先级：
//  1. explicit 非空时使用 explicit
//  2. metaPath 指向的 .meta 文件中的 guid
//  3. config.DefaultProjectileScriptGUID
//
// 返回的 source 说明 GUID 的来源，便于命令行输出。
func ResolveScriptGUID(explicit, metaPath string) (guid, source string, err error) {
	if explicit != "" {
		if !unity.IsGUID(explicit) {
			return "", "", fmt.Errorf("invalid script GUID %q: expected 32 lowercase hex digits", explicit)
		}
		return explicit, "flag", nil
	}

	if metaPath != "" {
		guid, ok, err := unity.ReadMetaGUID(metaPath)
		if err != nil {
			return "", "", err
		}
		if ok {
			if !unity.IsGUID(guid) {
				return "", "", fmt.Errorf("invalid GUID %q in %s", guid, metaPath)
			}
			return guid, metaPath, nil
		}
	}

	return config.DefaultProjectileScriptGUID, "default", nil
}
