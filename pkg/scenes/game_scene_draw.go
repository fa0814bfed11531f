package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 绘制尺寸（像素）
const (
	shapeSize       = 28.0
	beltThickness   = 10.0
	beltStripeWidth = 24.0
	chuteWidth      = 44.0
	binHeight       = 30.0
	binWallWidth    = 6.0
	heartSize       = 14.0
)

// targetPulsePeriod 目标描边脉冲周期（秒）
const targetPulsePeriod = 0.6

// laneOffsetForZ 将世界 z 换算为（可为小数的）传送带行号
func laneOffsetForZ(cfg *config.TuningConfig, z float64) float64 {
	t := utils.InverseLerp(cfg.LaneZ(0), cfg.LaneZ(config.LaneCount-1), z)
	return t * float64(config.LaneCount-1)
}

// drawWorld 绘制地面、传送带、出料口、物体和接取箱
func (s *GameScene) drawWorld(screen *ebiten.Image, state game.GameState) {
	screen.Fill(config.BackgroundColor)
	cfg := s.sim.Config()

	for lane := 0; lane < config.LaneCount; lane++ {
		s.drawLane(screen, lane)
	}

	for _, obj := range s.sim.Objects() {
		x := config.WorldToScreenX(obj.Position.X())
		y := config.WorldToScreenY(float64(obj.Lane), obj.Position.Y()) - shapeSize/2
		clr := config.ShapeColor(obj.Shape)
		drawShape(screen, obj.Shape, x, y, shapeSize, clr)

		// 目标形状加闪烁描边
		if obj.Shape == state.TargetShape {
			pulse := utils.Pulse(s.wallTime, targetPulsePeriod)
			outline := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(80 + 175*pulse)}
			half := shapeSize/2 + 4
			vector.StrokeRect(screen, float32(x-half), float32(y-half), float32(half*2), float32(half*2), 2, outline, false)
		}
	}

	s.drawBin(screen, cfg)

	// 地面以下区域（漏接区）
	for lane := 0; lane < config.LaneCount; lane++ {
		missY := config.WorldToScreenY(float64(lane), cfg.Catch.MissY)
		vector.StrokeLine(screen, float32(config.WorldToScreenX(cfg.Physics.BeltEndX)), float32(missY),
			float32(config.GameWindowWidth), float32(missY), 1, config.LostLifeColor, false)
	}
}

// drawLane 绘制一条传送带及其出料口
func (s *GameScene) drawLane(screen *ebiten.Image, lane int) {
	cfg := s.sim.Config()
	ground := config.LaneGroundY(lane)

	// 地面
	vector.DrawFilledRect(screen, 0, float32(ground), config.GameWindowWidth, 4, config.FloorColor, false)

	// 传送带表面
	left := config.WorldToScreenX(cfg.Physics.BeltStartX)
	right := config.WorldToScreenX(cfg.Physics.BeltEndX)
	top := config.WorldToScreenY(float64(lane), cfg.Physics.BeltY)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), beltThickness, config.BeltColor, false)

	// 滚动警示条纹，速度带上本传送带的倍率
	multiplier := 1.0
	if lane < len(cfg.Lanes.SpeedMultipliers) {
		multiplier = cfg.Lanes.SpeedMultipliers[lane]
	}
	scroll := math.Mod(s.beltScroll*multiplier*config.WorldPixelsPerUnit, beltStripeWidth*2)
	for x := left - beltStripeWidth*2 + scroll; x < right; x += beltStripeWidth * 2 {
		x0 := math.Max(x, left)
		x1 := math.Min(x+beltStripeWidth, right)
		if x1 <= x0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(x0), float32(top), float32(x1-x0), 2, config.BeltEdgeColor, false)
		vector.DrawFilledRect(screen, float32(x0), float32(top+beltThickness-2), float32(x1-x0), 2, config.BeltEdgeColor, false)
	}

	// 支架
	for _, x := range []float64{left + 10, (left + right) / 2, right - 10} {
		vector.StrokeLine(screen, float32(x), float32(top+beltThickness), float32(x), float32(ground), 2, config.ChuteColor, false)
	}

	// 出料口
	chuteX := config.WorldToScreenX(cfg.Physics.ChuteX)
	chuteTop := config.WorldToScreenY(float64(lane), cfg.Physics.ChuteY+1.5)
	chuteBottom := config.WorldToScreenY(float64(lane), cfg.Physics.ChuteY-0.5)
	vector.DrawFilledRect(screen, float32(chuteX-chuteWidth/2), float32(chuteTop),
		chuteWidth, float32(chuteBottom-chuteTop), config.ChuteColor, false)
}

// drawBin 在平滑后的位置绘制接取箱
func (s *GameScene) drawBin(screen *ebiten.Image, cfg *config.TuningConfig) {
	player := s.sim.Player()
	row := laneOffsetForZ(cfg, player.VisualZ)

	cx := config.WorldToScreenX(player.X)
	halfWidth := cfg.Catch.RadiusX * config.WorldPixelsPerUnit / 2
	bottom := config.WorldToScreenY(row, player.VisualY)
	top := bottom - binHeight

	vector.DrawFilledRect(screen, float32(cx-halfWidth), float32(bottom-binWallWidth),
		float32(halfWidth*2), binWallWidth, config.BinColor, false)
	vector.DrawFilledRect(screen, float32(cx-halfWidth), float32(top), binWallWidth, binHeight, config.BinColor, false)
	vector.DrawFilledRect(screen, float32(cx+halfWidth-binWallWidth), float32(top), binWallWidth, binHeight, config.BinColor, false)
}

// drawHUD 绘制得分、目标和生命
func (s *GameScene) drawHUD(screen *ebiten.Image, state game.GameState) {
	cfg := s.sim.Config()
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.HUDHeight, config.HUDColor, false)

	// 得分
	s.text.draw(screen, "SCORE:", 16, 4, 1, config.AccentColor)
	s.text.draw(screen, fmt.Sprintf("%05d", state.Score), 16, 18, 2, color.White)

	// 目标
	cx := float64(config.GameWindowWidth) / 2
	s.text.drawCentered(screen, fmt.Sprintf("TARGET (NEED %d)", cfg.Target.RotationCount), cx, 2, 1, config.AccentColor)
	drawShape(screen, state.TargetShape, cx-60, 32, 20, config.ShapeColor(state.TargetShape))
	label := fmt.Sprintf("%s [%d/%d]", state.TargetShape, state.TargetCatchCount, cfg.Target.RotationCount)
	s.text.draw(screen, label, cx-40, 20, 1.5, color.White)

	// 生命
	right := float64(config.GameWindowWidth) - 16
	s.text.draw(screen, "LIVES", right-textWidth("LIVES", 1), 4, 1, config.AccentColor)
	for i := 0; i < cfg.LivesStart; i++ {
		clr := config.LostLifeColor
		if i < state.Lives {
			clr = config.AccentColor
		}
		x := right - float64(cfg.LivesStart-i)*(heartSize+6) + heartSize/2
		drawHeart(screen, x, 32, heartSize, clr)
	}
}

// drawHeart 以 (cx, cy) 为中心绘制心形
func drawHeart(screen *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	r := size / 4
	vector.DrawFilledCircle(screen, float32(cx-r), float32(cy-r/2), float32(r), clr, true)
	vector.DrawFilledCircle(screen, float32(cx+r), float32(cy-r/2), float32(r), clr, true)
	fillPolygon(screen, []float64{
		cx - 2*r, cy - r/4,
		cx + 2*r, cy - r/4,
		cx, cy + size/2,
	}, clr)
}

// drawFlash 绘制闪屏反馈
func (s *GameScene) drawFlash(screen *ebiten.Image, state game.GameState) {
	var clr color.Color
	switch state.Flash {
	case game.FlashPositive:
		clr = config.PositiveFlashColor
	case game.FlashNegative:
		clr = config.NegativeFlashColor
	default:
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, clr, false)
}

// drawPaused 绘制暂停遮罩
func (s *GameScene) drawPaused(screen *ebiten.Image) {
	cx := float64(config.GameWindowWidth) / 2
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, config.OverlayColor, false)
	s.text.drawCentered(screen, "PAUSED", cx, 220, 6, color.White)
	s.text.drawCentered(screen, "PRESS [SPACE] TO RESUME", cx, 340, 2, config.AccentColor)
}

// drawGameOver 绘制结束画面
func (s *GameScene) drawGameOver(screen *ebiten.Image, state game.GameState) {
	cx := float64(config.GameWindowWidth) / 2
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, config.OverlayColor, false)
	s.text.drawCentered(screen, "GAME OVER", cx, 180, 6, config.DangerColor)
	s.text.drawCentered(screen, fmt.Sprintf("FINAL SCORE: %d", state.Score), cx, 300, 3, color.White)
	if math.Sin(s.wallTime*4) > -0.3 {
		s.text.drawCentered(screen, "RETRY? PRESS [ENTER] OR [R]", cx, 380, 2, config.BeltEdgeColor)
	}
}

// drawHint 开局未得分时的操作提示
func (s *GameScene) drawHint(screen *ebiten.Image) {
	cx := float64(config.GameWindowWidth) / 2
	hint := "UP / DOWN TO SWITCH LANES | SPACE TO PAUSE"
	s.text.drawCentered(screen, hint, cx, float64(config.GameWindowHeight)-26, 1, config.AccentColor)
}

// drawDebug 绘制调试信息
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	lanes := s.sim.LaneStates()
	counts := make([]int, len(lanes))
	for i, l := range lanes {
		counts[i] = l.ActiveCount
	}

	msg := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nactive: %.2fs  speed: %.3f\nobjects: %d  lanes: %v\ndeadline: %.2fs  forced: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.sim.ActiveTime(), s.sim.BaseSpeed(),
		len(s.sim.Objects()), counts,
		s.sim.TargetDeadline(), s.sim.ForcedSpawns())
	ebitenutil.DebugPrintAt(screen, msg, 8, config.HUDHeight+4)
	s.drawObjectLabels(screen)
}

// phaseLabel 调试用的阶段缩写
func phaseLabel(phase components.ItemPhase) string {
	switch phase {
	case components.PhaseSpawning:
		return "S"
	case components.PhaseTraveling:
		return "T"
	case components.PhaseFalling:
		return "F"
	default:
		return "?"
	}
}

// drawObjectLabels 调试模式下在物体旁标注阶段
func (s *GameScene) drawObjectLabels(screen *ebiten.Image) {
	for _, obj := range s.sim.Objects() {
		x := config.WorldToScreenX(obj.Position.X())
		y := config.WorldToScreenY(float64(obj.Lane), obj.Position.Y()) - shapeSize - 16
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d%s", obj.ID, phaseLabel(obj.Phase)), int(x)-6, int(y))
	}
}
