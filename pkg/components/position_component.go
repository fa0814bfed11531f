package components

import "github.com/go-gl/mathgl/mgl64"

// PositionComponent 世界坐标位置
// x 沿传送带方向，y 竖直向上，z 为所在传送带的横向位置（生成后固定）
type PositionComponent struct {
	Position mgl64.Vec3
}

// VelocityComponent 速度
// X 为传送带前进速度，Y 为竖直速度（出料和下落阶段使用）
type VelocityComponent struct {
	Velocity mgl64.Vec2
}
