package simulation

import (
	"math"

	"github.com/decker502/solidsorter/pkg/components"
)

// Autopilot 自动驾驶：把接取箱移向最紧迫的目标物体所在传送带
//
// 优先选择高度最低的下落中目标；没有下落目标时选择传送带上最靠前的目标。
// 每次 Steer 最多移动一条传送带，与玩家按键的节奏一致。
type Autopilot struct {
	sim *Simulation
}

// NewAutopilot 创建自动驾驶
func NewAutopilot(sim *Simulation) *Autopilot {
	return &Autopilot{sim: sim}
}

// Steer 根据当前物体分布移动一步
//
// 返回：
//   - int: 期望的传送带索引（-1 表示当前没有目标物体）
func (a *Autopilot) Steer() int {
	lane := a.desiredLane()
	if lane < 0 {
		return -1
	}

	current := a.sim.Player().Lane
	switch {
	case lane < current:
		a.sim.MoveUp()
	case lane > current:
		a.sim.MoveDown()
	}
	return lane
}

// desiredLane 选出最紧迫的目标物体所在传送带
func (a *Autopilot) desiredLane() int {
	target := a.sim.State().TargetShape

	bestFalling, bestFallingY := -1, math.Inf(1)
	bestTraveling, bestTravelingX := -1, math.Inf(-1)

	for _, obj := range a.sim.Objects() {
		if obj.Shape != target {
			continue
		}
		switch obj.Phase {
		case components.PhaseFalling:
			if obj.Position.Y() > a.sim.cfg.Catch.WindowMinY && obj.Position.Y() < bestFallingY {
				bestFalling, bestFallingY = obj.Lane, obj.Position.Y()
			}
		default:
			if obj.Position.X() > bestTravelingX {
				bestTraveling, bestTravelingX = obj.Lane, obj.Position.X()
			}
		}
	}

	if bestFalling >= 0 {
		return bestFalling
	}
	return bestTraveling
}
