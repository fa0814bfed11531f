package components

import "github.com/decker502/solidsorter/pkg/types"

// TargetTrackerComponent 目标出现保证组件
//
// Deadline 是活动时间阈值：超过后下一次生成强制使用目标形状。
type TargetTrackerComponent struct {
	// Deadline 下一次强制生成目标的活动时间
	Deadline float64

	// LastTarget 最近一次观察到的目标形状（用于判断目标是否切换）
	LastTarget types.ShapeType

	// ForcedSpawns 因保证机制强制生成的目标数量（统计用）
	ForcedSpawns int
}
