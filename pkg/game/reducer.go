package game

import "github.com/decker502/solidsorter/pkg/types"

// TargetPicker 目标形状选择器
// 轮换目标时由它提供新的形状（允许与旧目标相同）
type TargetPicker interface {
	PickTarget() types.ShapeType
}

// Reduce 将一个结果事件折叠进状态
//
// 纯函数：不修改入参，返回新状态。
//   - 已结束的游戏忽略所有事件
//   - 生命归零即结束（生命不会低于 0）
//   - 得分不低于 0
//   - 只有"接到当前目标"才推进目标计数，达到 rotationCount 时立刻轮换并清零
//
// 参数：
//   - state: 当前状态
//   - outcome: 结果事件
//   - rotationCount: 轮换所需的目标接取数
//   - picker: 轮换时使用的目标选择器
func Reduce(state GameState, outcome Outcome, rotationCount int, picker TargetPicker) GameState {
	if state.GameOver {
		return state
	}

	next := state

	next.Lives = state.Lives + outcome.LifeDelta
	if next.Lives <= 0 {
		next.Lives = 0
		next.GameOver = true
	}

	next.Score = state.Score + outcome.ScoreDelta
	if next.Score < 0 {
		next.Score = 0
	}

	next.Flash = outcome.Flash

	if outcome.IsCatch() && outcome.Shape == state.TargetShape {
		next.TargetCatchCount = state.TargetCatchCount + 1
		if next.TargetCatchCount >= rotationCount {
			next.TargetShape = picker.PickTarget()
			next.TargetCatchCount = 0
		}
	}

	return next
}
