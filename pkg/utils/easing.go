package utils

import "math"

// Easing Functions (缓动函数)
//
// 进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseInOutSine 正弦缓入缓出
// 用于目标描边等周期性脉冲
// 公式：f(t) = (1 - cos(πt)) / 2
func EaseInOutSine(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// Pulse 返回周期为 period 秒的 0 → 1 → 0 脉冲值
func Pulse(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	return EaseInOutSine(1 - math.Abs(2*phase-1))
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp 返回 v 在 [a, b] 中的插值比例
// a == b 时返回 0
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}
