package systems

import (
	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// fixedRandom 返回固定值的随机数来源
type fixedRandom struct {
	float float64
	index int
}

func (r *fixedRandom) Float64() float64 { return r.float }

func (r *fixedRandom) Intn(n int) int { return r.index % n }

// fixedChooser 总是返回同一形状
type fixedChooser struct {
	shape types.ShapeType
	calls int
}

func (c *fixedChooser) ChooseSpawnShape(activeTime float64, target types.ShapeType) types.ShapeType {
	c.calls++
	return c.shape
}

// addTestItem 创建一个指定阶段和位置的物体
func addTestItem(em *ecs.EntityManager, shape types.ShapeType, lane int, phase components.ItemPhase, pos mgl64.Vec3, vel mgl64.Vec2) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ConveyorItemComponent{Shape: shape, LaneIndex: lane, Phase: phase})
	em.AddComponent(id, &components.PositionComponent{Position: pos})
	em.AddComponent(id, &components.VelocityComponent{Velocity: vel})
	return id
}

func testTuning() *config.TuningConfig {
	return config.DefaultTuning()
}
