package components

// FlashEffectComponent 闪屏清除计时组件
// 每个接取/漏接结果都会创建一个计时实体，到期后把当前的闪屏信号清为无
//
// 计时基于墙钟时间：暂停、游戏结束、重新开局都不会阻止它到期
type FlashEffectComponent struct {
	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64
}
