package systems

import (
	"math"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/utils"
)

// PlayerLaneSystem 玩家接取箱控制系统
//
// 逻辑位置（LaneIndex / GameState.PlayerLaneZ）在输入时立即更新，
// 视觉位置每个 tick 按插值系数向逻辑位置靠拢。
type PlayerLaneSystem struct {
	entityManager *ecs.EntityManager
	binEntity     ecs.EntityID

	laneZ     []float64
	startLane int
	player    config.PlayerConfig
}

// NewPlayerLaneSystem 创建玩家控制系统，接取箱位于起始传送带
func NewPlayerLaneSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *PlayerLaneSystem {
	s := &PlayerLaneSystem{
		entityManager: em,
		laneZ:         append([]float64(nil), cfg.Lanes.Z...),
		startLane:     cfg.Player.StartLane,
		player:        cfg.Player,
	}

	s.binEntity = em.CreateEntity()
	em.AddComponent(s.binEntity, &components.PlayerBinComponent{
		LaneIndex: s.startLane,
		VisualZ:   s.laneZ[s.startLane],
		VisualY:   s.player.BinY,
	})

	return s
}

// Move 按方向移动一条传送带（-1 / +1），越界时保持不动
//
// 游戏未开始、暂停中或已结束时忽略输入。
//
// 返回：
//   - bool: 逻辑位置是否发生变化
func (s *PlayerLaneSystem) Move(delta int, state *game.GameState) bool {
	if !state.IsRunning() {
		return false
	}
	bin := s.bin()
	if bin == nil {
		return false
	}

	next := clampLane(bin.LaneIndex+delta, len(s.laneZ))
	if next == bin.LaneIndex {
		return false
	}

	bin.LaneIndex = next
	state.PlayerLaneZ = s.laneZ[next]
	return true
}

// Update 更新视觉位置
// 参数：
//   - activeTime: 活动时间，用于上下浮动
func (s *PlayerLaneSystem) Update(activeTime float64) {
	bin := s.bin()
	if bin == nil {
		return
	}

	targetZ := s.laneZ[bin.LaneIndex]
	bin.VisualZ = utils.Lerp(bin.VisualZ, targetZ, s.player.Smoothing)
	bin.VisualY = s.player.BinY + math.Sin(activeTime*s.player.BobFrequency)*s.player.BobAmplitude
}

// Reset 回到起始传送带，并同步状态中的逻辑 z
func (s *PlayerLaneSystem) Reset(state *game.GameState) {
	bin := s.bin()
	if bin == nil {
		return
	}
	bin.LaneIndex = s.startLane
	bin.VisualZ = s.laneZ[s.startLane]
	bin.VisualY = s.player.BinY
	state.PlayerLaneZ = s.laneZ[s.startLane]
}

// LaneIndex 返回逻辑所在传送带
func (s *PlayerLaneSystem) LaneIndex() int {
	if bin := s.bin(); bin != nil {
		return bin.LaneIndex
	}
	return s.startLane
}

// Bin 返回接取箱组件的副本
func (s *PlayerLaneSystem) Bin() components.PlayerBinComponent {
	if bin := s.bin(); bin != nil {
		return *bin
	}
	return components.PlayerBinComponent{LaneIndex: s.startLane}
}

func (s *PlayerLaneSystem) bin() *components.PlayerBinComponent {
	bin, ok := ecs.GetComponent[*components.PlayerBinComponent](s.entityManager, s.binEntity)
	if !ok {
		return nil
	}
	return bin
}

// clampLane 将传送带索引限制在 [0, count) 内
func clampLane(lane, count int) int {
	if lane < 0 {
		return 0
	}
	if lane >= count {
		return count - 1
	}
	return lane
}
