package prefab

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/gonewx/projgen/internal/unity"
	"github.com/gonewx/projgen/pkg/config"
)

// TemplateData 填充预制体模板所需的全部字段
type TemplateData struct {
	Name       string
	Tag        string
	IDs        unity.ComponentIDs
	SpriteGUID string
	ScriptGUID string // 未知时为占位符
	SpriteSize string // SpriteRenderer.m_Size，世界单位
	Radius     string // CircleCollider2D 半径
	Sorting    int
}

// NewTemplateData 根据子弹配置计算模板字段
func NewTemplateData(p config.ProjectileConfig, spriteGUID, scriptGUID string) TemplateData {
	return TemplateData{
		Name:       p.Name,
		Tag:        config.ProjectileTag,
		IDs:        unity.NewComponentIDs(p.Name),
		SpriteGUID: spriteGUID,
		ScriptGUID: scriptGUID,
		SpriteSize: formatFloat(float64(p.Size) / config.PixelsPerUnit),
		Radius:     formatFloat(config.ProjectileColliderRadius),
		Sorting:    config.ProjectileSortingOrder,
	}
}

// 模板中 Unity 的 {fileID: x} 与 text/template 的动作分隔符冲突，改用 [[ ]]
var prefabTemplate = template.Must(template.New("prefab").Delims("[[", "]]").Parse(`%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &[[.IDs.Root]]
GameObject:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  serializedVersion: 6
  m_Component:
  - component: {fileID: [[.IDs.Transform]]}
  - component: {fileID: [[.IDs.Sprite]]}
  - component: {fileID: [[.IDs.Rigidbody]]}
  - component: {fileID: [[.IDs.Collider]]}
  - component: {fileID: [[.IDs.Script]]}
  m_Layer: 0
  m_Name: [[.Name]]
  m_TagString: [[.Tag]]
  m_Icon: {fileID: 0}
  m_NavMeshLayer: 0
  m_StaticEditorFlags: 0
  m_IsActive: 1
--- !u!4 &[[.IDs.Transform]]
Transform:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: [[.IDs.Root]]}
  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}
  m_LocalPosition: {x: 0, y: 0, z: 0}
  m_LocalScale: {x: 1, y: 1, z: 1}
  m_ConstrainProportionsScale: 0
  m_Children: []
  m_Father: {fileID: 0}
  m_RootOrder: 0
  m_LocalEulerAnglesHint: {x: 0, y: 0, z: 0}
--- !u!212 &[[.IDs.Sprite]]
SpriteRenderer:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: [[.IDs.Root]]}
  m_Enabled: 1
  m_CastShadows: 0
  m_ReceiveShadows: 0
  m_DynamicOccludee: 1
  m_StaticShadowCaster: 0
  m_MotionVectors: 1
  m_LightProbeUsage: 1
  m_ReflectionProbeUsage: 1
  m_RayTracingMode: 0
  m_RayTraceProcedural: 0
  m_RenderingLayerMask: 1
  m_RendererPriority: 0
  m_Materials:
  - {fileID: 10754, guid: 0000000000000000f000000000000000, type: 0}
  m_StaticBatchInfo:
    firstSubMesh: 0
    subMeshCount: 0
  m_StaticBatchRoot: {fileID: 0}
  m_ProbeAnchor: {fileID: 0}
  m_LightProbeVolumeOverride: {fileID: 0}
  m_ScaleInLightmap: 1
  m_ReceiveGI: 1
  m_PreserveUVs: 0
  m_IgnoreNormalsForChartDetection: 0
  m_ImportantGI: 0
  m_StitchLightmapSeams: 1
  m_SelectedEditorRenderState: 0
  m_MinimumChartSize: 4
  m_AutoUVMaxDistance: 0.5
  m_AutoUVMaxAngle: 89
  m_LightmapParameters: {fileID: 0}
  m_SortingLayerID: 0
  m_SortingLayer: 0
  m_SortingOrder: [[.Sorting]]
  m_Sprite: {fileID: 21300000, guid: [[.SpriteGUID]], type: 3}
  m_Color: {r: 1, g: 1, b: 1, a: 1}
  m_FlipX: 0
  m_FlipY: 0
  m_DrawMode: 0
  m_Size: {x: [[.SpriteSize]], y: [[.SpriteSize]]}
  m_AdaptiveModeThreshold: 0.5
  m_SpriteTileMode: 0
  m_WasSpriteAssigned: 1
  m_MaskInteraction: 0
  m_SpriteSortPoint: 0
--- !u!50 &[[.IDs.Rigidbody]]
Rigidbody2D:
  serializedVersion: 4
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: [[.IDs.Root]]}
  m_BodyType: 1
  m_Simulated: 1
  m_UseFullKinematicContacts: 0
  m_UseAutoMass: 0
  m_Mass: 1
  m_LinearDrag: 0
  m_AngularDrag: 0.05
  m_GravityScale: 0
  m_Material: {fileID: 0}
  m_Interpolate: 0
  m_SleepingMode: 1
  m_CollisionDetection: 1
  m_Constraints: 0
--- !u!58 &[[.IDs.Collider]]
CircleCollider2D:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: [[.IDs.Root]]}
  m_Enabled: 1
  m_Density: 1
  m_Material: {fileID: 0}
  m_IsTrigger: 1
  m_UsedByEffector: 0
  m_UsedByComposite: 0
  m_Offset: {x: 0, y: 0}
  serializedVersion: 2
  m_Radius: [[.Radius]]
--- !u!114 &[[.IDs.Script]]
MonoBehaviour:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: [[.IDs.Root]]}
  m_Enabled: 1
  m_EditorHideFlags: 0
  m_Script: {fileID: 11500000, guid: [[.ScriptGUID]], type: 3}
  m_Name:
  m_EditorClassIdentifier:
  spriteRenderer: {fileID: [[.IDs.Sprite]]}
  rb2D: {fileID: [[.IDs.Rigidbody]]}
  projectileCollider: {fileID: [[.IDs.Collider]]}
  impactEffectPrefab: {fileID: 0}
  trailEffectPrefab: {fileID: 0}
`))

// Render 用模板生成预制体文本
// 输出中残留模板分隔符或空字段时返回错误
func Render(data TemplateData) ([]byte, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("prefab name cannot be empty")
	}
	if strings.ContainsAny(data.Name, "[]") {
		return nil, fmt.Errorf("prefab name %q cannot contain '[' or ']'", data.Name)
	}
	if data.SpriteGUID == "" || data.ScriptGUID == "" {
		return nil, fmt.Errorf("prefab %s: sprite and script GUID must be set", data.Name)
	}

	var buf bytes.Buffer
	if err := prefabTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render prefab %s: %w", data.Name, err)
	}

	out := buf.Bytes()
	if bytes.Contains(out, []byte("[[")) || bytes.Contains(out, []byte("]]")) {
		return nil, fmt.Errorf("prefab %s: unresolved template marker", data.Name)
	}
	return out, nil
}

// formatFloat 以最短形式输出浮点数（0.64、0.15、1）
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
