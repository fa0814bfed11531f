// Package simulation 组合各系统，提供与渲染无关的单步推进接口。
//
// 宿主程序（窗口、终端、无头测试）在自己的循环中调用 Step(dt)，
// 通过输入方法转发玩家操作，再用 State / Objects / Player 读取结果绘制。
// Simulation 不是并发安全的：只能由一个 goroutine 调用。
package simulation

import (
	"log"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/systems"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// StepResult 一次推进产生的事件
type StepResult struct {
	// Outcomes 本 tick 实际生效的接取 / 漏接结果（按实体 ID 排列，不含结束后丢弃的结果）
	Outcomes []game.Outcome

	// Spawned 本 tick 新生成的物体
	Spawned []ecs.EntityID

	// Removed 自上次推进以来删除的物体（判定删除和重新开局清场）
	Removed []ecs.EntityID

	// TargetChanged 本 tick 目标是否切换
	TargetChanged bool
}

// ObjectView 物体的只读视图，供渲染使用
type ObjectView struct {
	ID       ecs.EntityID
	Shape    types.ShapeType
	Lane     int
	Phase    components.ItemPhase
	Position mgl64.Vec3
	Velocity mgl64.Vec2
}

// PlayerView 接取箱的只读视图
type PlayerView struct {
	Lane    int     // 逻辑所在传送带
	LaneZ   float64 // 逻辑 z（接取判定使用）
	VisualZ float64 // 平滑后的视觉 z
	VisualY float64 // 带浮动的视觉高度
	X       float64 // 接取箱 x
}

// Simulation 一局游戏的完整模拟
type Simulation struct {
	cfg           *config.TuningConfig
	entityManager *ecs.EntityManager

	targetSystem *systems.TargetSystem
	spawnSystem  *systems.SpawnSystem
	motionSystem *systems.MotionSystem
	catchSystem  *systems.CatchSystem
	playerSystem *systems.PlayerLaneSystem
	flashSystem  *systems.FlashSystem

	state      game.GameState
	activeTime float64

	// pendingRemoved 重新开局清场的物体，在下一次 Step 中上报
	pendingRemoved []ecs.EntityID
}

// New 创建模拟
//
// 参数：
//   - cfg: 调参配置（调用方负责先 Validate）
//   - rng: 随机数来源；传入 systems.NewSeededSource(seed) 可复现整局
func New(cfg *config.TuningConfig, rng systems.RandomSource) *Simulation {
	cfg = cfg.Clone()
	em := ecs.NewEntityManager()

	s := &Simulation{
		cfg:           cfg,
		entityManager: em,
	}

	s.targetSystem = systems.NewTargetSystem(em, cfg, rng)
	s.spawnSystem = systems.NewSpawnSystem(em, cfg, rng, s.targetSystem)
	s.motionSystem = systems.NewMotionSystem(em, cfg.Physics)
	s.catchSystem = systems.NewCatchSystem(em, cfg.Catch, cfg.Scoring)
	s.playerSystem = systems.NewPlayerLaneSystem(em, cfg)
	s.flashSystem = systems.NewFlashSystem(em, cfg.FlashDuration)

	target := s.targetSystem.PickTarget()
	s.targetSystem.Reset(target)
	s.state = game.NewGameState(cfg.LivesStart, target, cfg.LaneZ(cfg.Player.StartLane))

	log.Printf("[Simulation] Created: lives=%d, target=%s", cfg.LivesStart, target)
	return s
}

// Step 推进一个 tick
//
// 参数：
//   - dt: 墙钟时间增量（秒）。闪屏计时总是推进；
//     只有运行中（已开始、未暂停、未结束）才推进活动时间、生成和运动
func (s *Simulation) Step(dt float64) StepResult {
	result := StepResult{Removed: s.pendingRemoved}
	s.pendingRemoved = nil

	s.flashSystem.Update(dt, &s.state)

	if s.state.IsRunning() {
		s.activeTime += dt

		// 本 tick 的生成和判定都基于 tick 开始时的状态
		snapshot := s.state

		result.Spawned = s.spawnSystem.Update(s.activeTime, snapshot.TargetShape)
		s.playerSystem.Update(s.activeTime)
		s.motionSystem.Update(dt)

		for _, outcome := range s.catchSystem.Update(snapshot) {
			result.Removed = append(result.Removed, outcome.Entity)

			// 同一 tick 内结束后的结果被丢弃，不上报
			if s.state.GameOver {
				continue
			}
			s.applyOutcome(outcome)
			result.Outcomes = append(result.Outcomes, outcome)
		}

		result.TargetChanged = s.targetSystem.ObserveTarget(s.state.TargetShape, s.activeTime)
	} else {
		s.playerSystem.Update(s.activeTime)
	}

	s.entityManager.RemoveMarkedEntities()
	return result
}

// applyOutcome 折叠一个结果并启动闪屏清除计时
func (s *Simulation) applyOutcome(outcome game.Outcome) {
	s.flashSystem.Trigger()

	wasOver := s.state.GameOver
	s.state = game.Reduce(s.state, outcome, s.cfg.Target.RotationCount, s.targetSystem)

	if !wasOver && s.state.GameOver {
		log.Printf("[Simulation] Game over: score=%d, activeTime=%.2fs", s.state.Score, s.activeTime)
	}
}

// Start 开始游戏（仅第一次有效）
func (s *Simulation) Start() bool {
	if s.state.HasStarted {
		return false
	}
	s.state.HasStarted = true
	log.Printf("[Simulation] Started")
	return true
}

// TogglePause 切换暂停（仅在已开始且未结束时有效）
func (s *Simulation) TogglePause() bool {
	if !s.state.HasStarted || s.state.GameOver {
		return false
	}
	s.state.IsPaused = !s.state.IsPaused
	log.Printf("[Simulation] Paused=%v", s.state.IsPaused)
	return true
}

// MoveUp 接取箱移到上一条传送带（索引减一）
func (s *Simulation) MoveUp() bool {
	return s.playerSystem.Move(-1, &s.state)
}

// MoveDown 接取箱移到下一条传送带（索引加一）
func (s *Simulation) MoveDown() bool {
	return s.playerSystem.Move(1, &s.state)
}

// Restart 重新开局
//
// 清除所有物体，重置得分、生命、目标、基础速度、活动时间和保证期限；
// HasStarted 保持不变。被清除的物体在下一次 Step 的 Removed 中上报。
// 已经启动的闪屏计时不受影响。
func (s *Simulation) Restart() {
	items := ecs.GetEntitiesWith1[*components.ConveyorItemComponent](s.entityManager)
	for _, id := range items {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	s.pendingRemoved = append(s.pendingRemoved, items...)

	s.activeTime = 0
	s.spawnSystem.Reset()

	target := s.targetSystem.PickTarget()
	s.targetSystem.Reset(target)

	hasStarted := s.state.HasStarted
	s.state = game.NewGameState(s.cfg.LivesStart, target, s.cfg.LaneZ(s.cfg.Player.StartLane))
	s.state.HasStarted = hasStarted
	s.playerSystem.Reset(&s.state)

	log.Printf("[Simulation] Restarted: cleared %d objects, target=%s", len(items), target)
}

// State 返回状态副本
func (s *Simulation) State() game.GameState {
	return s.state
}

// ActiveTime 返回活动时间（暂停和结束时冻结）
func (s *Simulation) ActiveTime() float64 {
	return s.activeTime
}

// Config 返回模拟使用的配置
func (s *Simulation) Config() *config.TuningConfig {
	return s.cfg
}

// BaseSpeed 返回当前传送带基础速度
func (s *Simulation) BaseSpeed() float64 {
	return s.spawnSystem.BaseSpeed()
}

// LaneStates 返回各传送带最近一次统计
func (s *Simulation) LaneStates() []components.LaneStateComponent {
	return s.spawnSystem.LaneStates()
}

// TargetDeadline 返回目标强制生成期限（活动时间）
func (s *Simulation) TargetDeadline() float64 {
	return s.targetSystem.Deadline()
}

// ForcedSpawns 返回本局强制生成目标的次数
func (s *Simulation) ForcedSpawns() int {
	return s.targetSystem.ForcedSpawns()
}

// Objects 返回所有存活物体的视图，按 ID 排列
func (s *Simulation) Objects() []ObjectView {
	entities := ecs.GetEntitiesWith3[
		*components.ConveyorItemComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	views := make([]ObjectView, 0, len(entities))
	for _, id := range entities {
		item, _ := ecs.GetComponent[*components.ConveyorItemComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		views = append(views, ObjectView{
			ID:       id,
			Shape:    item.Shape,
			Lane:     item.LaneIndex,
			Phase:    item.Phase,
			Position: pos.Position,
			Velocity: vel.Velocity,
		})
	}
	return views
}

// Player 返回接取箱视图
func (s *Simulation) Player() PlayerView {
	bin := s.playerSystem.Bin()
	return PlayerView{
		Lane:    bin.LaneIndex,
		LaneZ:   s.state.PlayerLaneZ,
		VisualZ: bin.VisualZ,
		VisualY: bin.VisualY,
		X:       s.cfg.Catch.PlayerX,
	}
}
