package main

import (
	"math"

	"github.com/decker502/solidsorter/pkg/config"
)

// 终端布局
const (
	hudRows    = 2 // 顶部信息栏行数
	footerRows = 1 // 底部提示行数
	minWidth   = 40
	minHeight  = 15
)

// cellLayout 世界坐标到字符格的投影
// 每条传送带占一段行区间，x 线性映射到列，y 在行区间内从漏接线映射到出料口
type cellLayout struct {
	width, height int
	rowHeight     int

	minX, maxX float64
	minY, maxY float64
}

// newCellLayout 根据终端尺寸和调参创建投影
func newCellLayout(width, height int, cfg *config.TuningConfig) cellLayout {
	rowHeight := (height - hudRows - footerRows) / config.LaneCount
	if rowHeight < 1 {
		rowHeight = 1
	}
	return cellLayout{
		width:     width,
		height:    height,
		rowHeight: rowHeight,
		minX:      cfg.Physics.ChuteX - 2,
		maxX:      cfg.Catch.PlayerX + cfg.Catch.RadiusX + 1,
		minY:      cfg.Catch.MissY,
		maxY:      cfg.Physics.ChuteY + 1,
	}
}

// column 返回世界 x 对应的列
func (l cellLayout) column(x float64) int {
	t := (x - l.minX) / (l.maxX - l.minX)
	return clampInt(int(math.Round(t*float64(l.width-1))), 0, l.width-1)
}

// row 返回（可为小数的）传送带行号和世界高度对应的屏幕行
func (l cellLayout) row(laneOffset, y float64) int {
	bandTop := float64(hudRows) + laneOffset*float64(l.rowHeight)
	t := (y - l.minY) / (l.maxY - l.minY)
	r := bandTop + (1-t)*float64(l.rowHeight-1)
	return clampInt(int(math.Round(r)), 0, l.height-1)
}

// tooSmall 终端是否太小无法绘制
func (l cellLayout) tooSmall() bool {
	return l.width < minWidth || l.height < minHeight
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
