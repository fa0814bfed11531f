package config

import (
	"image/color"

	"github.com/decker502/solidsorter/pkg/types"
)

// 配色常量（窗口和终端宿主共用）
var (
	// BackgroundColor 背景色
	BackgroundColor = color.RGBA{R: 0x02, G: 0x02, B: 0x05, A: 0xff}

	// FloorColor 地面色
	FloorColor = color.RGBA{R: 0x10, G: 0x10, B: 0x1a, A: 0xff}

	// BeltColor 传送带表面色
	BeltColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}

	// BeltEdgeColor 传送带边缘警示色
	BeltEdgeColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0x00, A: 0xff}

	// ChuteColor 出料口颜色
	ChuteColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}

	// BinColor 接取箱颜色
	BinColor = color.RGBA{R: 0x00, G: 0x88, B: 0xff, A: 0xff}

	// AccentColor HUD 强调色（青色）
	AccentColor = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}

	// LostLifeColor 已失去生命的颜色
	LostLifeColor = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}

	// PositiveFlashColor 接到目标时的闪屏颜色（半透明绿）
	PositiveFlashColor = color.NRGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0x1a}

	// NegativeFlashColor 接错或漏接时的闪屏颜色（半透明红）
	NegativeFlashColor = color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0x1a}

	// DangerColor 结束画面标题色
	DangerColor = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}

	// OverlayColor 暂停和结束画面的遮罩
	OverlayColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0}

	// HUDColor 顶部信息栏底色
	HUDColor = color.RGBA{R: 0x0a, G: 0x0a, B: 0x14, A: 0xff}
)

// shapeColors 每种形状的颜色
var shapeColors = map[types.ShapeType]color.RGBA{
	types.ShapeBox:        {R: 0xff, G: 0x33, B: 0x33, A: 0xff},
	types.ShapeCylinder:   {R: 0xff, G: 0x99, B: 0x00, A: 0xff},
	types.ShapeSphere:     {R: 0x33, G: 0x66, B: 0xff, A: 0xff},
	types.ShapeTorus:      {R: 0xff, G: 0x66, B: 0xcc, A: 0xff},
	types.ShapeCone:       {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	types.ShapeRoof:       {R: 0x33, G: 0xff, B: 0x33, A: 0xff},
	types.ShapeParaboloid: {R: 0x99, G: 0x00, B: 0xff, A: 0xff},
	types.ShapeWedge:      {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
}

// ShapeColor 返回形状颜色，未知形状返回白色
func ShapeColor(shape types.ShapeType) color.RGBA {
	if c, ok := shapeColors[shape]; ok {
		return c
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
