package config

// 资源生成常量
// 本文件定义了子弹精灵图和预制体生成时使用的目录、GUID 与组件参数

// Asset Paths (资源路径)
const (
	// DefaultSpriteDir 子弹精灵图输出目录（相对于 Unity 工程根目录）
	DefaultSpriteDir = "Assets/Sprites/Projectiles"

	// DefaultPrefabDir 子弹预制体输出目录
	DefaultPrefabDir = "Assets/Prefabs/Projectiles"

	// ProjectileScriptMetaPath Projectile 脚本的 meta 文件
	// 补丁工具从这里读取脚本 GUID
	ProjectileScriptMetaPath = "Assets/Scripts/Tower/Projectile.cs.meta"

	// DefaultCatalogPath 子弹配置表的 YAML 版本
	DefaultCatalogPath = "data/projectiles.yaml"
)

// GUID Configuration (GUID 配置)
const (
	// ScriptGUIDPlaceholder 预制体模板中脚本 GUID 的占位符
	// 生成器未指定脚本 GUID 时写入，之后由补丁工具替换
	ScriptGUIDPlaceholder = "YOUR_PROJECTILE_SCRIPT_GUID"

	// DefaultProjectileScriptGUID Projectile.cs 在工程中的 GUID
	DefaultProjectileScriptGUID = "adb22c109a93484db8be6b3fea878069"

	// NullSpriteGUID 找不到精灵图 meta 时使用的占位 GUID
	NullSpriteGUID = "00000000000000000000000000000000"

	// RegistryAppName GUID 注册表的 gdata 应用名
	RegistryAppName = "projgen"
)

// Prefab Components (预制体组件参数)
const (
	// PixelsPerUnit 精灵图导入时每单位像素数（Unity 默认 100）
	// SpriteRenderer.m_Size = 图片尺寸 / PixelsPerUnit
	PixelsPerUnit = 100

	// ProjectileColliderRadius 子弹圆形碰撞体半径（世界单位）
	ProjectileColliderRadius = 0.15

	// ProjectileSortingOrder 子弹渲染排序，需高于塔和敌人
	ProjectileSortingOrder = 15

	// ProjectileTag 子弹 GameObject 的标签
	ProjectileTag = "Projectile"
)

// Catalog Limits (配置表限制)
const (
	// MinSpriteSize 精灵图最小边长（像素）
	MinSpriteSize = 8

	// MaxSpriteSize 精灵图最大边长（像素）
	MaxSpriteSize = 1024
)
