package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/decker502/solidsorter/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// shapeGlyphs 每种形状的字符
var shapeGlyphs = map[types.ShapeType]rune{
	types.ShapeBox:        '■',
	types.ShapeCylinder:   '▮',
	types.ShapeSphere:     '●',
	types.ShapeTorus:      '◎',
	types.ShapeCone:       '▲',
	types.ShapeRoof:       '⌂',
	types.ShapeParaboloid: '∪',
	types.ShapeWedge:      '◣',
}

// shapeGlyph 返回形状字符，未知形状返回 '?'
func shapeGlyph(shape types.ShapeType) rune {
	if r, ok := shapeGlyphs[shape]; ok {
		return r
	}
	return '?'
}

// rgb 把调色板颜色转换为终端颜色
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	baseStyle   = tcell.StyleDefault.Background(rgb(config.BackgroundColor)).Foreground(tcell.ColorWhite)
	accentStyle = baseStyle.Foreground(rgb(config.AccentColor))
	beltStyle   = baseStyle.Foreground(rgb(config.BeltEdgeColor))
	chuteStyle  = baseStyle.Foreground(rgb(config.ChuteColor))
	binStyle    = baseStyle.Foreground(rgb(config.BinColor)).Bold(true)
	lostStyle   = baseStyle.Foreground(rgb(config.LostLifeColor))
	dangerStyle = baseStyle.Foreground(rgb(config.DangerColor)).Bold(true)
)

// flashBackground 闪屏时的背景色
func flashBackground(flash game.FlashSignal) (tcell.Color, bool) {
	switch flash {
	case game.FlashPositive:
		return tcell.NewRGBColor(0x06, 0x2a, 0x12), true
	case game.FlashNegative:
		return tcell.NewRGBColor(0x3a, 0x0a, 0x0a), true
	default:
		return 0, false
	}
}

func (g *Game) draw() {
	state := g.sim.State()

	bg := baseStyle
	if c, ok := flashBackground(state.Flash); ok {
		bg = bg.Background(c)
	}
	g.screen.Fill(' ', bg)

	layout := newCellLayout(g.width, g.height, g.sim.Config())
	if layout.tooSmall() {
		g.drawText(0, 0, fmt.Sprintf("TERMINAL TOO SMALL (%dx%d)", minWidth, minHeight), dangerStyle)
		g.screen.Show()
		return
	}

	g.drawLanes(layout)
	g.drawObjects(layout, state)
	g.drawBin(layout)
	g.drawHUD(state)

	switch {
	case !state.HasStarted:
		g.drawTitle()
	case state.GameOver:
		g.drawGameOver(state)
	case state.IsPaused:
		g.drawCentered(g.height/2, "PAUSED", accentStyle.Bold(true))
		g.drawCentered(g.height/2+1, "PRESS [SPACE] TO RESUME", accentStyle)
	case state.Score == 0:
		g.drawCentered(g.height-1, "↑ / ↓ TO SWITCH LANES | SPACE TO PAUSE | M MUTE", accentStyle)
	}

	g.screen.Show()
}

// drawLanes 绘制传送带和出料口
func (g *Game) drawLanes(layout cellLayout) {
	cfg := g.sim.Config()
	left := layout.column(cfg.Physics.BeltStartX)
	right := layout.column(cfg.Physics.BeltEndX)
	chute := layout.column(cfg.Physics.ChuteX)

	for lane := 0; lane < config.LaneCount; lane++ {
		multiplier := 1.0
		if lane < len(cfg.Lanes.SpeedMultipliers) {
			multiplier = cfg.Lanes.SpeedMultipliers[lane]
		}
		offset := int(math.Floor(g.beltScroll * multiplier))

		beltRow := layout.row(float64(lane), cfg.Physics.BeltY) + 1
		for x := left; x <= right; x++ {
			r := '═'
			if (x-offset)%4 == 0 {
				r = '╪'
			}
			g.screen.SetContent(x, beltRow, r, nil, beltStyle)
		}

		chuteRow := layout.row(float64(lane), cfg.Physics.ChuteY)
		g.drawText(chute-1, chuteRow-1, "▄▄▄", chuteStyle)
		g.drawText(chute-1, chuteRow, "▀ ▀", chuteStyle)

		missRow := layout.row(float64(lane), cfg.Catch.MissY)
		for x := right + 1; x < g.width; x++ {
			g.screen.SetContent(x, missRow, '┄', nil, lostStyle)
		}
	}
}

// drawObjects 绘制所有物体，目标形状闪烁加粗
func (g *Game) drawObjects(layout cellLayout, state game.GameState) {
	blink := utils.Pulse(g.wallTime, 0.6) > 0.5
	for _, obj := range g.sim.Objects() {
		x := layout.column(obj.Position.X())
		y := layout.row(float64(obj.Lane), obj.Position.Y())
		style := baseStyle.Foreground(rgb(config.ShapeColor(obj.Shape)))
		if obj.Shape == state.TargetShape && blink {
			style = style.Bold(true).Reverse(true)
		}
		g.screen.SetContent(x, y, shapeGlyph(obj.Shape), nil, style)
	}
}

// drawBin 绘制接取箱
func (g *Game) drawBin(layout cellLayout) {
	cfg := g.sim.Config()
	player := g.sim.Player()

	row := laneOffset(cfg, player.VisualZ)
	x0 := layout.column(player.X - cfg.Catch.RadiusX)
	x1 := layout.column(player.X + cfg.Catch.RadiusX)
	y := layout.row(row, player.VisualY)

	g.screen.SetContent(x0, y, '╰', nil, binStyle)
	for x := x0 + 1; x < x1; x++ {
		g.screen.SetContent(x, y, '─', nil, binStyle)
	}
	g.screen.SetContent(x1, y, '╯', nil, binStyle)
}

// laneOffset 将世界 z 换算为（可为小数的）传送带行号
func laneOffset(cfg *config.TuningConfig, z float64) float64 {
	t := utils.InverseLerp(cfg.LaneZ(0), cfg.LaneZ(config.LaneCount-1), z)
	return t * float64(config.LaneCount-1)
}

// drawHUD 绘制得分、目标和生命
func (g *Game) drawHUD(state game.GameState) {
	cfg := g.sim.Config()

	g.drawText(1, 0, "SOLID SORTER", accentStyle.Bold(true))
	g.drawText(1, 1, fmt.Sprintf("SCORE: %05d", state.Score), baseStyle)

	target := fmt.Sprintf("TARGET (NEED %d): ", cfg.Target.RotationCount)
	tx := g.width/2 - (len(target)+12)/2
	g.drawText(tx, 1, target, accentStyle)
	tx += len(target)
	g.screen.SetContent(tx, 1, shapeGlyph(state.TargetShape), nil,
		baseStyle.Foreground(rgb(config.ShapeColor(state.TargetShape))).Bold(true))
	g.drawText(tx+2, 1, fmt.Sprintf("%s [%d/%d]", state.TargetShape, state.TargetCatchCount, cfg.Target.RotationCount), baseStyle)

	lx := g.width - cfg.LivesStart*2 - 8
	g.drawText(lx, 1, "LIVES ", accentStyle)
	for i := 0; i < cfg.LivesStart; i++ {
		style := lostStyle
		if i < state.Lives {
			style = accentStyle
		}
		g.screen.SetContent(lx+6+i*2, 1, '♥', nil, style)
	}

	if !g.cues.Enabled() {
		g.drawText(g.width-6, 0, "MUTED", lostStyle)
	}
}

// drawTitle 绘制开始画面
func (g *Game) drawTitle() {
	mid := g.height / 2
	g.drawCentered(mid-3, "S O L I D   S O R T E R", accentStyle.Bold(true))
	g.drawCentered(mid-1, "CATCH THE FLASHING TARGET SHAPE.", binStyle)
	g.drawCentered(mid, "WRONG SHAPES OR MISSES LOSE LIVES.", binStyle)
	g.drawCentered(mid+1, "USE ARROW KEYS [↑/↓] TO SWITCH LANES.", binStyle)
	g.drawCentered(mid+3, "PRESS [SPACE] TO START OPERATION", beltStyle.Bold(true))
}

// drawGameOver 绘制结束画面
func (g *Game) drawGameOver(state game.GameState) {
	mid := g.height / 2
	g.drawCentered(mid-1, "GAME OVER", dangerStyle)
	g.drawCentered(mid, fmt.Sprintf("FINAL SCORE: %d", state.Score), baseStyle.Bold(true))
	g.drawCentered(mid+2, "RETRY? PRESS [ENTER] OR [R]   [ESC] QUIT", beltStyle)
}

// drawText 从 (x, y) 开始写一行文本
func (g *Game) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawCentered 在第 y 行居中写文本
func (g *Game) drawCentered(y int, text string, style tcell.Style) {
	n := len([]rune(text))
	g.drawText((g.width-n)/2, y, text, style)
}
