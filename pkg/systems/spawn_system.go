package systems

import (
	"log"
	"math"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeChooser 为每次生成选择形状
// TargetSystem 实现此接口
type ShapeChooser interface {
	ChooseSpawnShape(activeTime float64, target types.ShapeType) types.ShapeType
}

// SpawnSystem 传送带生成调度系统
//
// 此系统负责：
//   - 每个 tick 统计各传送带上未下落物体的数量和最小 x
//   - 按容量、出料口间距、开局错峰和生成概率决定是否生成
//   - 生成物体并推进全局基础速度
//
// 遵循零耦合原则：形状选择委托给 ShapeChooser
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	rng           RandomSource
	chooser       ShapeChooser

	// beltEntity 全局基础速度所在实体
	beltEntity ecs.EntityID

	// laneEntities 每条传送带一个实体，按索引排列
	laneEntities []ecs.EntityID

	lanes   config.LaneConfig
	physics config.PhysicsConfig
	spawn   config.SpawnConfig

	centerLane int
}

// NewSpawnSystem 创建生成调度系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 调参配置
//   - rng: 随机数来源（非空传送带的生成概率）
//   - chooser: 形状选择器
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng RandomSource, chooser ShapeChooser) *SpawnSystem {
	s := &SpawnSystem{
		entityManager: em,
		rng:           rng,
		chooser:       chooser,
		lanes:         cfg.Lanes,
		physics:       cfg.Physics,
		spawn:         cfg.Spawn,
		centerLane:    cfg.CenterLane(),
	}

	s.beltEntity = em.CreateEntity()
	em.AddComponent(s.beltEntity, components.NewConveyorBeltComponent(cfg.Physics.InitialSpeed))

	for i, z := range cfg.Lanes.Z {
		id := em.CreateEntity()
		em.AddComponent(id, &components.LaneStateComponent{
			LaneIndex:       i,
			Z:               z,
			SpeedMultiplier: cfg.Lanes.SpeedMultipliers[i],
			MinX:            math.Inf(1),
		})
		s.laneEntities = append(s.laneEntities, id)
	}

	log.Printf("[SpawnSystem] Initialized (Belt Entity ID: %d), lanes=%d, capacity=%d, speed=%.2f",
		s.beltEntity, len(s.laneEntities), s.lanes.Capacity, cfg.Physics.InitialSpeed)

	return s
}

// Update 执行一次生成调度
//
// 参数：
//   - activeTime: 当前活动时间（秒）
//   - target: 当前目标形状（快照）
//
// 返回：
//   - []ecs.EntityID: 本 tick 新生成的物体
func (s *SpawnSystem) Update(activeTime float64, target types.ShapeType) []ecs.EntityID {
	belt, ok := ecs.GetComponent[*components.ConveyorBeltComponent](s.entityManager, s.beltEntity)
	if !ok {
		return nil
	}

	s.recountLanes()

	var spawned []ecs.EntityID
	for _, laneEntity := range s.laneEntities {
		lane, ok := ecs.GetComponent[*components.LaneStateComponent](s.entityManager, laneEntity)
		if !ok {
			continue
		}

		if !s.canSpawn(lane, activeTime) {
			continue
		}

		// 空传送带立即生成，非空传送带按概率生成
		if !lane.IsEmpty() && s.rng.Float64() >= s.spawn.SpawnChance {
			continue
		}

		shape := s.chooser.ChooseSpawnShape(activeTime, target)
		spawned = append(spawned, s.spawnItem(belt, lane, shape))
	}

	return spawned
}

// canSpawn 判断传送带本 tick 是否允许生成
func (s *SpawnSystem) canSpawn(lane *components.LaneStateComponent, activeTime float64) bool {
	// 开局错峰：只有中间传送带立即开始
	if lane.LaneIndex != s.centerLane && activeTime < s.spawn.StaggerDelay {
		return false
	}

	if lane.ActiveCount >= s.lanes.Capacity {
		return false
	}

	// 出料口附近仍有物体时不生成，防止重叠
	if !lane.IsEmpty() && lane.MinX <= s.physics.ChuteX+s.lanes.ClearDistance {
		return false
	}

	return true
}

// spawnItem 在出料口创建一个物体
//
// 物体速度使用生成前的基础速度，生成后基础速度增加固定增量
func (s *SpawnSystem) spawnItem(belt *components.ConveyorBeltComponent, lane *components.LaneStateComponent, shape types.ShapeType) ecs.EntityID {
	speed := belt.BaseSpeed * lane.SpeedMultiplier

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ConveyorItemComponent{
		Shape:     shape,
		LaneIndex: lane.LaneIndex,
		Phase:     components.PhaseSpawning,
	})
	s.entityManager.AddComponent(id, &components.PositionComponent{
		Position: mgl64.Vec3{s.physics.ChuteX, s.physics.ChuteY, lane.Z},
	})
	s.entityManager.AddComponent(id, &components.VelocityComponent{
		Velocity: mgl64.Vec2{speed, 0},
	})

	belt.BaseSpeed += s.physics.SpeedIncrement
	belt.SpawnCount++

	lane.ActiveCount++
	lane.MinX = math.Min(lane.MinX, s.physics.ChuteX)
	lane.SpawnedTotal++

	log.Printf("[SpawnSystem] Spawned %s (Entity ID: %d) on lane %d, speed=%.3f",
		shape, id, lane.LaneIndex, speed)

	return id
}

// recountLanes 重新统计每条传送带上未下落的物体
//
// 下落中的物体和已标记删除的物体不占用容量
func (s *SpawnSystem) recountLanes() {
	laneComps := make([]*components.LaneStateComponent, len(s.laneEntities))
	for i, laneEntity := range s.laneEntities {
		lane, ok := ecs.GetComponent[*components.LaneStateComponent](s.entityManager, laneEntity)
		if !ok {
			continue
		}
		lane.ActiveCount = 0
		lane.MinX = math.Inf(1)
		laneComps[i] = lane
	}

	items := ecs.GetEntitiesWith2[*components.ConveyorItemComponent, *components.PositionComponent](s.entityManager)
	for _, id := range items {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		item, _ := ecs.GetComponent[*components.ConveyorItemComponent](s.entityManager, id)
		if item.IsFalling() || item.LaneIndex < 0 || item.LaneIndex >= len(laneComps) {
			continue
		}
		lane := laneComps[item.LaneIndex]
		if lane == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		lane.ActiveCount++
		lane.MinX = math.Min(lane.MinX, pos.Position.X())
	}
}

// Reset 重新开局时恢复初始速度和统计
func (s *SpawnSystem) Reset() {
	if belt, ok := ecs.GetComponent[*components.ConveyorBeltComponent](s.entityManager, s.beltEntity); ok {
		belt.BaseSpeed = s.physics.InitialSpeed
		belt.SpawnCount = 0
	}
	for _, laneEntity := range s.laneEntities {
		if lane, ok := ecs.GetComponent[*components.LaneStateComponent](s.entityManager, laneEntity); ok {
			lane.ActiveCount = 0
			lane.MinX = math.Inf(1)
			lane.SpawnedTotal = 0
		}
	}
}

// BaseSpeed 返回当前基础速度
func (s *SpawnSystem) BaseSpeed() float64 {
	if belt, ok := ecs.GetComponent[*components.ConveyorBeltComponent](s.entityManager, s.beltEntity); ok {
		return belt.BaseSpeed
	}
	return 0
}

// SpawnCount 返回本局累计生成数量
func (s *SpawnSystem) SpawnCount() int {
	if belt, ok := ecs.GetComponent[*components.ConveyorBeltComponent](s.entityManager, s.beltEntity); ok {
		return belt.SpawnCount
	}
	return 0
}

// LaneStates 返回各传送带状态的副本（按索引排列）
func (s *SpawnSystem) LaneStates() []components.LaneStateComponent {
	states := make([]components.LaneStateComponent, 0, len(s.laneEntities))
	for _, laneEntity := range s.laneEntities {
		if lane, ok := ecs.GetComponent[*components.LaneStateComponent](s.entityManager, laneEntity); ok {
			states = append(states, *lane)
		}
	}
	return states
}
