// Package registry 持久化资源 GUID 分配结果
//
// 重新生成资源时，即使 .meta 文件被删除，也能恢复之前分配的 GUID，
// 从而不破坏 Unity 场景中对预制体和精灵图的引用。
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/projgen/internal/unity"
)

const (
	// 存储对象名称
	guidObject = "guids"

	// Unity 工程的资源根目录名
	assetsDir = "Assets"
)

// Registry GUID 注册表
type Registry struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式：每次生成新 GUID）
}

// Open 以指定应用名打开注册表
// gdata 初始化失败时返回降级模式的注册表和错误，调用方可以继续使用
func Open(appName string) (*Registry, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return New(nil), fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return New(manager), nil
}

// New 使用已有的 gdata Manager 创建注册表，manager 可为 nil
func New(manager *gdata.Manager) *Registry {
	return &Registry{gdataManager: manager}
}

// Persistent 是否具备持久化能力
func (r *Registry) Persistent() bool {
	return r != nil && r.gdataManager != nil
}

// Lookup 查找资源已分配的 GUID
func (r *Registry) Lookup(assetKey string) (string, bool) {
	if !r.Persistent() {
		return "", false
	}

	prop := propKey(assetKey)
	if !r.gdataManager.ObjectPropExists(guidObject, prop) {
		return "", false
	}

	data, err := r.gdataManager.LoadObjectProp(guidObject, prop)
	if err != nil {
		log.Printf("[GUIDRegistry] Warning: failed to load %s: %v", assetKey, err)
		return "", false
	}

	guid, storedKey, _ := strings.Cut(string(data), " ")
	if storedKey != assetKey {
		log.Printf("[GUIDRegistry] Warning: entry for %s belongs to %q, ignoring", assetKey, storedKey)
		return "", false
	}
	if !unity.IsGUID(guid) {
		log.Printf("[GUIDRegistry] Warning: ignoring malformed GUID for %s: %q", assetKey, guid)
		return "", false
	}
	return guid, true
}

// Assign 返回资源的 GUID：已登记则复用，否则生成新的并保存
func (r *Registry) Assign(assetKey string) (string, error) {
	if guid, ok := r.Lookup(assetKey); ok {
		return guid, nil
	}

	guid := unity.NewGUID()
	if err := r.Remember(assetKey, guid); err != nil {
		return guid, err
	}
	return guid, nil
}

// Remember 登记资源的 GUID（例如从已有 .meta 文件读取到的值）
// 降级模式下为空操作
func (r *Registry) Remember(assetKey, guid string) error {
	if !r.Persistent() {
		return nil
	}
	if !unity.IsGUID(guid) {
		return fmt.Errorf("invalid GUID for %s: %q", assetKey, guid)
	}

	if err := r.gdataManager.SaveObjectProp(guidObject, propKey(assetKey), []byte(guid+" "+assetKey)); err != nil {
		return fmt.Errorf("failed to save GUID for %s: %w", assetKey, err)
	}
	return nil
}

// AssetKey 规范化资源路径，作为注册表的键
//
// 路径先转为绝对路径；位于 Unity 工程 Assets 目录下时取从 "Assets/" 开始的部分，
// 因此从不同工作目录访问同一资源得到同一个键。
func AssetKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	key := filepath.ToSlash(filepath.Clean(path))

	if strings.HasPrefix(key, assetsDir+"/") {
		return key
	}
	if i := strings.Index(key, "/"+assetsDir+"/"); i >= 0 {
		return key[i+1:]
	}
	return key
}

// propKey 将资源键转换为 gdata 属性名
// gdata 以属性名作为文件名，取键的 SHA-256 十六进制摘要，长度固定且不同的键不会冲突。
// 原始键随 GUID 一起保存，读取时再核对。
func propKey(assetKey string) string {
	sum := sha256.Sum256([]byte(assetKey))
	return hex.EncodeToString(sum[:])
}
