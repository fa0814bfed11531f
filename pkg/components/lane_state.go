package components

// LaneStateComponent 传送带状态组件
//
// 每条传送带一个实体。生成系统每个 tick 重新统计计数和最小 x，
// 用于容量控制和出料口防重叠判断。
type LaneStateComponent struct {
	LaneIndex       int     // 传送带索引（0-2）
	Z               float64 // 传送带 z 坐标
	SpeedMultiplier float64 // 相对基础速度的倍率
	ActiveCount     int     // 本 tick 统计的未下落物体数量
	MinX            float64 // 未下落物体中的最小 x（无物体时为 +Inf）
	SpawnedTotal    int     // 本局累计生成数量
}

// IsEmpty 传送带上是否没有未下落物体
func (c *LaneStateComponent) IsEmpty() bool {
	return c.ActiveCount == 0
}
