package systems

import "math/rand"

// RandomSource 模拟使用的随机数来源
// *rand.Rand 满足此接口；测试可注入固定序列
type RandomSource interface {
	// Float64 返回 [0, 1) 区间的随机数
	Float64() float64
	// Intn 返回 [0, n) 区间的随机整数
	Intn(n int) int
}

// NewSeededSource 创建固定种子的随机数来源，同一种子产生同一局游戏
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
