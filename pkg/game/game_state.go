package game

import "github.com/decker502/solidsorter/pkg/types"

// FlashSignal 一次性的闪屏反馈标记
type FlashSignal int

const (
	// FlashNone 无闪屏
	FlashNone FlashSignal = iota
	// FlashPositive 接到目标（绿色）
	FlashPositive
	// FlashNegative 接错或漏接目标（红色）
	FlashNegative
)

// String 返回闪屏标记名称
func (f FlashSignal) String() string {
	switch f {
	case FlashPositive:
		return "positive"
	case FlashNegative:
		return "negative"
	default:
		return "none"
	}
}

// GameState 面向玩家的权威游戏状态
//
// HUD 每帧只读这一份状态；只有模拟循环会修改它。
// 不变量：Lives >= 0；GameOver 之后结果事件不再改变状态；TargetCatchCount 小于轮换数。
type GameState struct {
	Score int // 当前得分（不低于 0）
	Lives int // 剩余生命

	TargetShape      types.ShapeType // 当前需要接取的形状
	TargetCatchCount int             // 当前目标已接取数量

	PlayerLaneZ float64 // 玩家逻辑所在传送带的 z 坐标

	GameOver   bool // 生命耗尽
	IsPaused   bool // 暂停中
	HasStarted bool // 已经开始（重新开局后保持为 true）

	Flash FlashSignal // 闪屏反馈，由计时器自动清除
}

// NewGameState 创建开局状态
//
// 参数：
//   - lives: 开局生命数
//   - target: 开局目标形状
//   - laneZ: 玩家开局所在传送带的 z 坐标
func NewGameState(lives int, target types.ShapeType, laneZ float64) GameState {
	return GameState{
		Score:            0,
		Lives:            lives,
		TargetShape:      target,
		TargetCatchCount: 0,
		PlayerLaneZ:      laneZ,
		GameOver:         false,
		IsPaused:         false,
		HasStarted:       false,
		Flash:            FlashNone,
	}
}

// IsRunning 模拟是否处于推进状态（已开始、未暂停、未结束）
func (gs GameState) IsRunning() bool {
	return gs.HasStarted && !gs.GameOver && !gs.IsPaused
}
