// Package unity 提供 Unity 资源文件相关的工具：GUID、fileID 与 .meta 文件读写
package unity

import (
	"encoding/hex"
	"hash/fnv"
	"strconv"

	"github.com/google/uuid"
)

// NewGUID 生成 Unity 风格的 GUID（32 位小写十六进制，无连字符）
func NewGUID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// IsGUID 判断字符串是否为合法的 Unity GUID
func IsGUID(s string) bool {
	if len(s) != 32 {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

// fileID 取值范围 [1e9, 1e10)，即固定 10 位数字
const (
	fileIDBase  = 1000000000
	fileIDRange = 9000000000
)

// FileID 根据资源名和组件标识计算预制体内的 fileID
// 同样的输入总是得到同样的结果，重新生成不会打乱引用
func FileID(name, part string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name + part))
	return int64(h.Sum64()%fileIDRange) + fileIDBase
}

// ComponentIDs 子弹预制体中各组件的 fileID
type ComponentIDs struct {
	Root      int64
	Transform int64
	Sprite    int64
	Rigidbody int64
	Collider  int64
	Script    int64
}

// NewComponentIDs 为一个预制体生成互不重复的组件 fileID
// 发生碰撞时在组件标识后追加序号重新计算
func NewComponentIDs(name string) ComponentIDs {
	used := make(map[int64]bool, 6)
	next := func(part string) int64 {
		id := FileID(name, part)
		for n := 1; used[id]; n++ {
			id = FileID(name, part+"#"+strconv.Itoa(n))
		}
		used[id] = true
		return id
	}

	return ComponentIDs{
		Root:      next("root"),
		Transform: next("transform"),
		Sprite:    next("sprite"),
		Rigidbody: next("rb"),
		Collider:  next("collider"),
		Script:    next("script"),
	}
}
