// Package audio 合成游戏提示音
//
// 提示音全部由正弦波实时合成，不依赖音频资源文件。
// 终端宿主通过 CuePlayer 直接播放；窗口宿主通过 RenderPCM 取得 PCM 数据交给 Ebitengine 播放。
package audio

import (
	"time"

	"github.com/decker502/solidsorter/pkg/game"
)

// Cue 提示音类型
type Cue int

const (
	// CueCatch 接到目标
	CueCatch Cue = iota
	// CueWrong 接错形状
	CueWrong
	// CueMiss 漏接目标
	CueMiss
	// CueRotate 目标轮换
	CueRotate
	// CueGameOver 游戏结束
	CueGameOver
)

// String 返回提示音名称
func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueWrong:
		return "wrong"
	case CueMiss:
		return "miss"
	case CueRotate:
		return "rotate"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// note 一个音符
type note struct {
	freq     float64       // 频率（Hz）
	duration time.Duration // 时长
}

// cueNotes 每种提示音的音符序列
var cueNotes = map[Cue][]note{
	CueCatch:    {{880, 60 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	CueWrong:    {{220, 160 * time.Millisecond}},
	CueMiss:     {{330, 80 * time.Millisecond}, {196, 140 * time.Millisecond}},
	CueRotate:   {{660, 50 * time.Millisecond}, {880, 50 * time.Millisecond}, {1100, 70 * time.Millisecond}},
	CueGameOver: {{392, 150 * time.Millisecond}, {294, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
}

// Duration 返回提示音总时长
func (c Cue) Duration() time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.duration
	}
	return total
}

// CueForOutcome 返回结果事件对应的提示音
// 漏接非目标不发声
func CueForOutcome(o game.Outcome) (Cue, bool) {
	switch {
	case o.IsCatch() && o.Flash == game.FlashPositive:
		return CueCatch, true
	case o.IsCatch():
		return CueWrong, true
	case o.Flash == game.FlashNegative:
		return CueMiss, true
	default:
		return 0, false
	}
}

// CuesForStep 返回一次推进应播放的提示音序列
//
// 参数：
//   - outcomes: 本次推进的结果事件
//   - targetChanged: 本次推进目标是否轮换
//   - becameOver: 本次推进是否刚进入游戏结束
//
// 游戏结束时不再播放轮换提示
func CuesForStep(outcomes []game.Outcome, targetChanged, becameOver bool) []Cue {
	var cues []Cue
	for _, o := range outcomes {
		if cue, ok := CueForOutcome(o); ok {
			cues = append(cues, cue)
		}
	}
	if becameOver {
		return append(cues, CueGameOver)
	}
	if targetChanged {
		cues = append(cues, CueRotate)
	}
	return cues
}
