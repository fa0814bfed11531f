package systems

import (
	"log"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/types"
)

// TargetSystem 目标轮换与出现保证系统
//
// 此系统负责：
//   - 轮换目标时从形状池中等概率抽取（允许抽到原目标）
//   - 为每次生成选择形状：超过保证期限时强制生成目标形状
//   - 目标切换时把期限重置为较短的切换窗口
//
// 期限以活动时间计，暂停期间不推进。
type TargetSystem struct {
	entityManager *ecs.EntityManager
	rng           RandomSource

	// trackerEntity 保存期限状态的实体
	trackerEntity ecs.EntityID

	shapes          []types.ShapeType
	guaranteeWindow float64
	changeWindow    float64
}

// NewTargetSystem 创建目标系统
//
// 参数：
//   - em: 实体管理器
//   - cfg: 调参配置（使用 Shapes 和 Target 段）
//   - rng: 随机数来源
func NewTargetSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng RandomSource) *TargetSystem {
	s := &TargetSystem{
		entityManager:   em,
		rng:             rng,
		shapes:          append([]types.ShapeType(nil), cfg.Shapes...),
		guaranteeWindow: cfg.Target.GuaranteeWindow,
		changeWindow:    cfg.Target.ChangeWindow,
	}

	s.trackerEntity = em.CreateEntity()
	em.AddComponent(s.trackerEntity, &components.TargetTrackerComponent{
		Deadline:   s.guaranteeWindow,
		LastTarget: types.ShapeUnknown,
	})

	log.Printf("[TargetSystem] Initialized (Entity ID: %d), pool=%v, window=%.1fs",
		s.trackerEntity, s.shapes, s.guaranteeWindow)

	return s
}

// PickTarget 从形状池中等概率抽取一个新目标
func (s *TargetSystem) PickTarget() types.ShapeType {
	return s.shapes[s.rng.Intn(len(s.shapes))]
}

// ChooseSpawnShape 为一次生成选择形状
//
// 活动时间达到期限时强制返回目标并延长期限；
// 否则随机抽取，恰好抽中目标时同样延长期限。
func (s *TargetSystem) ChooseSpawnShape(activeTime float64, target types.ShapeType) types.ShapeType {
	tracker := s.tracker()
	if tracker == nil {
		return s.PickTarget()
	}

	if activeTime >= tracker.Deadline {
		tracker.Deadline = activeTime + s.guaranteeWindow
		tracker.ForcedSpawns++
		return target
	}

	shape := s.PickTarget()
	if shape == target {
		tracker.Deadline = activeTime + s.guaranteeWindow
	}
	return shape
}

// ObserveTarget 观察当前目标，目标形状变化时重置期限
//
// 返回：
//   - bool: 目标是否发生了变化
func (s *TargetSystem) ObserveTarget(target types.ShapeType, activeTime float64) bool {
	tracker := s.tracker()
	if tracker == nil || tracker.LastTarget == target {
		return false
	}

	changed := tracker.LastTarget != types.ShapeUnknown
	tracker.LastTarget = target
	if changed {
		tracker.Deadline = activeTime + s.changeWindow
		log.Printf("[TargetSystem] Target changed to %s, deadline=%.2f", target, tracker.Deadline)
	}
	return changed
}

// Reset 开局或重新开局时恢复初始期限
func (s *TargetSystem) Reset(target types.ShapeType) {
	tracker := s.tracker()
	if tracker == nil {
		return
	}
	tracker.Deadline = s.guaranteeWindow
	tracker.LastTarget = target
	tracker.ForcedSpawns = 0
}

// Deadline 返回当前强制生成期限（活动时间）
func (s *TargetSystem) Deadline() float64 {
	if tracker := s.tracker(); tracker != nil {
		return tracker.Deadline
	}
	return 0
}

// ForcedSpawns 返回本局强制生成目标的次数
func (s *TargetSystem) ForcedSpawns() int {
	if tracker := s.tracker(); tracker != nil {
		return tracker.ForcedSpawns
	}
	return 0
}

func (s *TargetSystem) tracker() *components.TargetTrackerComponent {
	tracker, ok := ecs.GetComponent[*components.TargetTrackerComponent](s.entityManager, s.trackerEntity)
	if !ok {
		return nil
	}
	return tracker
}
