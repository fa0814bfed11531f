package config

// 布局配置常量
// 本文件定义了窗口和终端宿主的布局参数，模拟核心不依赖这些值

// LaneCount 传送带数量（固定 3 条）
const LaneCount = 3

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// HUDHeight 顶部信息栏高度（像素）
	HUDHeight = 48

	// WorldPixelsPerUnit 世界单位到像素的缩放
	WorldPixelsPerUnit = 30.0

	// WorldOriginX 世界 x=0 在屏幕上的位置（像素）
	WorldOriginX = 560.0

	// LaneRowGap 每条传送带在屏幕上的行距（像素）
	LaneRowGap = 170.0

	// LaneRowBaseY 第一条传送带地面线的屏幕 y（像素）
	LaneRowBaseY = 210.0

	// LaneHeightScale 竖直高度在行内的压缩比例
	// 三条传送带共用一块屏幕，高度需要压扁，避免相邻行重叠
	LaneHeightScale = 0.45
)

// WorldToScreenX 将世界 x 转换为屏幕 x
func WorldToScreenX(worldX float64) float64 {
	return WorldOriginX + worldX*WorldPixelsPerUnit
}

// LaneGroundY 返回指定传送带地面线的屏幕 y
func LaneGroundY(lane int) float64 {
	return LaneRowBaseY + float64(lane)*LaneRowGap
}

// WorldToScreenY 将（所在行，世界高度）转换为屏幕 y
// laneOffset 允许传入插值后的行位置（如接取箱的平滑位置）
func WorldToScreenY(laneOffset float64, worldY float64) float64 {
	return LaneRowBaseY + laneOffset*LaneRowGap - worldY*WorldPixelsPerUnit*LaneHeightScale
}
