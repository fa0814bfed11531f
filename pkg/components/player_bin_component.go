package components

// PlayerBinComponent 玩家接取箱组件
//
// LaneIndex 是逻辑位置，输入后立即更新并用于接取判定；
// VisualZ / VisualY 仅用于渲染，每个 tick 向逻辑位置平滑靠拢。
type PlayerBinComponent struct {
	LaneIndex int     // 逻辑所在传送带
	VisualZ   float64 // 平滑后的视觉 z
	VisualY   float64 // 带上下浮动的视觉高度
}
