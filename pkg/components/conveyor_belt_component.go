package components

// ConveyorBeltComponent 传送带全局状态组件
//
// 三条传送带共享一个基础速度：每生成一个物体，基础速度增加一个固定增量，
// 形成线性增长的难度曲线。单条传送带的速度 = 基础速度 × 该传送带倍率。
type ConveyorBeltComponent struct {
	// BaseSpeed 当前基础速度（单位/秒）
	BaseSpeed float64

	// SpawnCount 本局累计生成的物体数量
	SpawnCount int
}

// NewConveyorBeltComponent 创建传送带组件
func NewConveyorBeltComponent(initialSpeed float64) *ConveyorBeltComponent {
	return &ConveyorBeltComponent{
		BaseSpeed:  initialSpeed,
		SpawnCount: 0,
	}
}
