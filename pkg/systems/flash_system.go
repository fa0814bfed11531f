package systems

import (
	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
)

// FlashSystem 闪屏清除计时系统
//
// 每个结果事件触发一个计时实体；计时基于墙钟时间，
// 到期时把当前状态的闪屏信号清为 FlashNone 并删除计时实体。
type FlashSystem struct {
	entityManager *ecs.EntityManager
	duration      float64
}

// NewFlashSystem 创建闪屏计时系统
func NewFlashSystem(em *ecs.EntityManager, duration float64) *FlashSystem {
	return &FlashSystem{
		entityManager: em,
		duration:      duration,
	}
}

// Trigger 启动一个新的清除计时
func (s *FlashSystem) Trigger() ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.FlashEffectComponent{
		Duration: s.duration,
	})
	return id
}

// Update 推进所有计时
// 参数：
//   - wallDt: 墙钟时间增量（秒），暂停和结束后仍然推进
//   - state: 到期时被清除闪屏信号的状态
//
// 返回：
//   - int: 本次到期的计时数量
func (s *FlashSystem) Update(wallDt float64, state *game.GameState) int {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	fired := 0
	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)

		flash.Elapsed += wallDt
		if flash.Elapsed >= flash.Duration {
			state.Flash = game.FlashNone
			s.entityManager.DestroyEntity(id)
			fired++
		}
	}
	return fired
}

// Pending 返回尚未到期的计时数量
func (s *FlashSystem) Pending() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}
