// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// ShapeType 定义传送带物体的形状
// 纯标签，不携带任何几何信息（几何体由渲染层根据形状自行构造）
type ShapeType int

const (
	// ShapeUnknown 未知形状
	ShapeUnknown ShapeType = iota
	// ShapeBox 立方体
	ShapeBox
	// ShapeCylinder 圆柱
	ShapeCylinder
	// ShapeSphere 球体
	ShapeSphere
	// ShapeTorus 圆环
	ShapeTorus
	// ShapeCone 圆锥
	ShapeCone
	// ShapeRoof 屋顶形三棱柱
	ShapeRoof
	// ShapeParaboloid 抛物面
	ShapeParaboloid
	// ShapeWedge 直角楔形（可选变体，默认不在生成池中）
	ShapeWedge
)

var shapeNames = map[ShapeType]string{
	ShapeBox:        "BOX",
	ShapeCylinder:   "CYLINDER",
	ShapeSphere:     "SPHERE",
	ShapeTorus:      "TORUS",
	ShapeCone:       "CONE",
	ShapeRoof:       "ROOF",
	ShapeParaboloid: "PARABOLOID",
	ShapeWedge:      "WEDGE",
}

// DefaultShapePool 默认生成池（不含楔形）
func DefaultShapePool() []ShapeType {
	return []ShapeType{
		ShapeBox,
		ShapeCylinder,
		ShapeSphere,
		ShapeTorus,
		ShapeCone,
		ShapeRoof,
		ShapeParaboloid,
	}
}

// AllShapes 返回全部已知形状（含可选变体）
func AllShapes() []ShapeType {
	return append(DefaultShapePool(), ShapeWedge)
}

// String 返回形状的字符串表示
func (s ShapeType) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid 检查形状是否属于已知枚举
func (s ShapeType) IsValid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShapeType 将名称解析为形状（大小写不敏感）
func ParseShapeType(name string) (ShapeType, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for shape, n := range shapeNames {
		if n == key {
			return shape, nil
		}
	}
	return ShapeUnknown, fmt.Errorf("unknown shape type %q", name)
}

// MarshalYAML 以名称形式序列化
func (s ShapeType) MarshalYAML() (interface{}, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal shape type %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML 从名称解析形状
func (s *ShapeType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseShapeType(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
