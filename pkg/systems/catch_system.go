package systems

import (
	"log"
	"math"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
)

// CatchSystem 接取 / 漏接判定系统
//
// 只判定下落阶段的物体：
//   - 在接取高度窗口内且与接取箱的 x、z 距离都在半径内 → 接取
//   - 低于漏接高度 → 漏接
//
// 每个物体只产生一个结果，判定后立即标记删除。
type CatchSystem struct {
	entityManager *ecs.EntityManager
	catch         config.CatchConfig
	scoring       config.ScoringConfig
}

// NewCatchSystem 创建判定系统
func NewCatchSystem(em *ecs.EntityManager, catch config.CatchConfig, scoring config.ScoringConfig) *CatchSystem {
	return &CatchSystem{
		entityManager: em,
		catch:         catch,
		scoring:       scoring,
	}
}

// Update 判定本 tick 所有下落物体
//
// 参数：
//   - state: tick 开始时的状态快照，目标形状和玩家逻辑 z 都取自快照
//
// 返回：
//   - []game.Outcome: 按实体 ID 顺序排列的结果
func (s *CatchSystem) Update(state game.GameState) []game.Outcome {
	entities := ecs.GetEntitiesWith2[*components.ConveyorItemComponent, *components.PositionComponent](s.entityManager)

	var outcomes []game.Outcome
	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		item, _ := ecs.GetComponent[*components.ConveyorItemComponent](s.entityManager, id)
		if !item.IsFalling() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		isTarget := item.Shape == state.TargetShape

		var outcome game.Outcome
		switch {
		case s.inCatchZone(pos, state.PlayerLaneZ):
			outcome = s.catchOutcome(isTarget)
		case pos.Position.Y() < s.catch.MissY:
			outcome = s.missOutcome(isTarget)
		default:
			continue
		}

		outcome.Entity = id
		outcome.Shape = item.Shape
		outcome.Lane = item.LaneIndex
		outcomes = append(outcomes, outcome)

		s.entityManager.DestroyEntity(id)
		log.Printf("[CatchSystem] Entity %d: %s", id, outcome)
	}

	return outcomes
}

// inCatchZone 物体是否落入接取箱
func (s *CatchSystem) inCatchZone(pos *components.PositionComponent, playerZ float64) bool {
	y := pos.Position.Y()
	if y <= s.catch.WindowMinY || y >= s.catch.WindowMaxY {
		return false
	}
	return math.Abs(pos.Position.X()-s.catch.PlayerX) < s.catch.RadiusX &&
		math.Abs(pos.Position.Z()-playerZ) < s.catch.RadiusZ
}

// catchOutcome 接取结果：目标加分，非目标扣命
func (s *CatchSystem) catchOutcome(isTarget bool) game.Outcome {
	if isTarget {
		return game.Outcome{
			Kind:       game.OutcomeCatch,
			ScoreDelta: s.scoring.CatchScore,
			Flash:      game.FlashPositive,
		}
	}
	return game.Outcome{
		Kind:      game.OutcomeCatch,
		LifeDelta: -s.scoring.WrongCatch,
		Flash:     game.FlashNegative,
	}
}

// missOutcome 漏接结果：漏掉目标扣命，非目标无影响
func (s *CatchSystem) missOutcome(isTarget bool) game.Outcome {
	if isTarget {
		return game.Outcome{
			Kind:      game.OutcomeMiss,
			LifeDelta: -s.scoring.MissedTarget,
			Flash:     game.FlashNegative,
		}
	}
	return game.Outcome{
		Kind:  game.OutcomeMiss,
		Flash: game.FlashNone,
	}
}
