package simulation

import "time"

// Clock 墙钟时间增量来源
//
// 每次 Tick 返回距上一次 Tick 的秒数；第一次返回 0。
// 增量上限为 maxDelta，避免窗口拖动或调试断点后物体瞬移。
type Clock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta float64
}

// NewClock 创建使用系统时间的时钟
func NewClock(maxDelta float64) *Clock {
	return NewClockWithSource(time.Now, maxDelta)
}

// NewClockWithSource 创建使用自定义时间来源的时钟（测试使用）
// maxDelta <= 0 表示不限制
func NewClockWithSource(now func() time.Time, maxDelta float64) *Clock {
	return &Clock{
		now:      now,
		maxDelta: maxDelta,
	}
}

// Tick 返回距上次调用的秒数
func (c *Clock) Tick() float64 {
	current := c.now()
	if !c.started {
		c.started = true
		c.last = current
		return 0
	}

	dt := current.Sub(c.last).Seconds()
	c.last = current

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
