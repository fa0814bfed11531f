package game

import (
	"fmt"

	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/types"
)

// OutcomeKind 结果类型
type OutcomeKind int

const (
	// OutcomeCatch 物体落入接取箱
	OutcomeCatch OutcomeKind = iota
	// OutcomeMiss 物体落地
	OutcomeMiss
)

// String 返回结果类型名称
func (k OutcomeKind) String() string {
	if k == OutcomeCatch {
		return "catch"
	}
	return "miss"
}

// Outcome 一个物体的最终判定结果
// 每个物体恰好产生一个结果（接取或漏接，不会两者都有）
type Outcome struct {
	Entity ecs.EntityID    // 被判定的物体
	Shape  types.ShapeType // 物体形状
	Lane   int             // 物体所在传送带
	Kind   OutcomeKind     // 接取 / 漏接

	ScoreDelta int         // 得分变化
	LifeDelta  int         // 生命变化（<= 0）
	Flash      FlashSignal // 闪屏反馈
}

// IsCatch 是否为接取结果
func (o Outcome) IsCatch() bool {
	return o.Kind == OutcomeCatch
}

// String 便于日志输出
func (o Outcome) String() string {
	return fmt.Sprintf("%s %s lane=%d score%+d lives%+d flash=%s",
		o.Kind, o.Shape, o.Lane, o.ScoreDelta, o.LifeDelta, o.Flash)
}
