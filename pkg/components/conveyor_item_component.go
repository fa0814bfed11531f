package components

import "github.com/decker502/solidsorter/pkg/types"

// ItemPhase 传送带物体的运动阶段
type ItemPhase int

const (
	// PhaseSpawning 从出料口抛出，受重力下落到传送带上
	PhaseSpawning ItemPhase = iota
	// PhaseTraveling 在传送带上匀速前进
	PhaseTraveling
	// PhaseFalling 越过传送带末端后的抛物下落（终态）
	PhaseFalling
)

// String 返回阶段名称
func (p ItemPhase) String() string {
	switch p {
	case PhaseSpawning:
		return "Spawning"
	case PhaseTraveling:
		return "Traveling"
	case PhaseFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// ConveyorItemComponent 传送带物体组件
//
// 每个生成的物体都是一个实体，实体 ID 即物体的唯一标识。
// Shape 与 LaneIndex 在创建后不再改变。
type ConveyorItemComponent struct {
	// Shape 物体形状
	Shape types.ShapeType

	// LaneIndex 所在传送带（0..2），决定 z 坐标和容量统计
	LaneIndex int

	// Phase 当前运动阶段
	Phase ItemPhase
}

// IsFalling 是否处于下落阶段
func (c *ConveyorItemComponent) IsFalling() bool {
	return c.Phase == PhaseFalling
}
