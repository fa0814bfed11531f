package systems

import (
	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
)

// MotionSystem 物体运动系统
//
// 按阶段积分每个物体的位置：
//   - Spawning: 受重力下落，同时以固定漂移速度前进，落到传送带高度后进入 Traveling
//   - Traveling: 以生成时确定的速度沿传送带前进，越过末端后进入 Falling
//   - Falling: 抛物下落，直到被接取或漏接判定删除
//
// z 坐标从不修改。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	physics       config.PhysicsConfig
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager, physics config.PhysicsConfig) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		physics:       physics,
	}
}

// Update 推进所有物体
// 参数：
//   - dt: 活动时间增量（秒）
func (s *MotionSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[
		*components.ConveyorItemComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		item, _ := ecs.GetComponent[*components.ConveyorItemComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		switch item.Phase {
		case components.PhaseSpawning:
			s.updateSpawning(item, pos, vel, dt)
		case components.PhaseTraveling:
			s.updateTraveling(item, pos, vel, dt)
		case components.PhaseFalling:
			s.updateFalling(pos, vel, dt)
		}
	}
}

// updateSpawning 出料阶段
func (s *MotionSystem) updateSpawning(item *components.ConveyorItemComponent, pos *components.PositionComponent, vel *components.VelocityComponent, dt float64) {
	vel.Velocity[1] += s.physics.Gravity * dt
	pos.Position[1] += vel.Velocity[1] * dt
	pos.Position[0] += s.physics.SpawnDriftX * dt

	if pos.Position[1] <= s.physics.LandingY {
		pos.Position[1] = s.physics.LandingY
		vel.Velocity[1] = 0
		item.Phase = components.PhaseTraveling
	}
}

// updateTraveling 传送带阶段
func (s *MotionSystem) updateTraveling(item *components.ConveyorItemComponent, pos *components.PositionComponent, vel *components.VelocityComponent, dt float64) {
	pos.Position[0] += vel.Velocity[0] * dt

	if pos.Position[0] > s.physics.BeltEndX {
		item.Phase = components.PhaseFalling
		vel.Velocity[1] = s.physics.LaunchVY
	}
}

// updateFalling 下落阶段
func (s *MotionSystem) updateFalling(pos *components.PositionComponent, vel *components.VelocityComponent, dt float64) {
	vel.Velocity[1] += s.physics.Gravity * dt
	pos.Position[1] += vel.Velocity[1] * dt
	pos.Position[0] += vel.Velocity[0] * dt
}
