package unity

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// metaHeader .meta 文件中所有导入器共有的字段
type metaHeader struct {
	FileFormatVersion int    `yaml:"fileFormatVersion"`
	GUID              string `yaml:"guid"`
}

// ReadMetaGUID 从 .meta 文件读取 guid
//
// 返回：
//   - guid: 读取到的 GUID
//   - found: 文件存在且包含 guid 字段时为 true
//   - error: 仅在文件存在但无法读取时返回
//
// 文件不存在不是错误，调用方自行决定回退值。
func ReadMetaGUID(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read meta file: %w", err)
	}

	guid := ParseMetaGUID(data)
	return guid, guid != "", nil
}

// ParseMetaGUID 从 .meta 文件内容中提取 guid
// 先按 YAML 解析，失败时退回逐行查找第一个 "guid:" 行
func ParseMetaGUID(data []byte) string {
	var header metaHeader
	if err := yaml.Unmarshal(data, &header); err == nil && header.GUID != "" {
		return strings.TrimSpace(header.GUID)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "guid:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "guid:"))
		}
	}
	return ""
}

var prefabMetaTemplate = template.Must(template.New("prefab.meta").Parse(`fileFormatVersion: 2
guid: {{.GUID}}
PrefabImporter:
  externalObjects: {}
  userData:
  assetBundleName:
  assetBundleVariant:
`))

var textureMetaTemplate = template.Must(template.New("texture.meta").Parse(`fileFormatVersion: 2
guid: {{.GUID}}
TextureImporter:
  internalIDToNameTable: []
  externalObjects: {}
  serializedVersion: 12
  mipmaps:
    mipMapMode: 0
    enableMipMap: 0
  isReadable: 0
  textureType: 8
  textureShape: 1
  alphaUsage: 1
  alphaIsTransparency: 1
  textureSettings:
    serializedVersion: 2
    filterMode: 1
    aniso: 1
    mipBias: 0
    wrapU: 1
    wrapV: 1
    wrapW: 1
  spriteMode: 1
  spriteExtrude: 1
  spriteMeshType: 1
  alignment: 0
  spritePivot: {x: 0.5, y: 0.5}
  spritePixelsToUnits: {{.PixelsPerUnit}}
  spriteBorder: {x: 0, y: 0, z: 0, w: 0}
  spriteGenerateFallbackPhysicsShape: 1
  userData:
  assetBundleName:
  assetBundleVariant:
`))

// RenderPrefabMeta 生成预制体 .meta 文件内容
func RenderPrefabMeta(guid string) ([]byte, error) {
	var buf bytes.Buffer
	if err := prefabMetaTemplate.Execute(&buf, struct{ GUID string }{guid}); err != nil {
		return nil, fmt.Errorf("failed to render prefab meta: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderTextureMeta 生成精灵图（Sprite 模式）.meta 文件内容
func RenderTextureMeta(guid string, pixelsPerUnit int) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		GUID          string
		PixelsPerUnit int
	}{guid, pixelsPerUnit}
	if err := textureMetaTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render texture meta: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteMeta 写入 .meta 文件
func WriteMeta(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write meta file %s: %w", path, err)
	}
	return nil
}
