package scenes

import (
	"log"
	"math"

	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// titleInstructions 开始画面的玩法说明
var titleInstructions = []string{
	"CATCH THE FLASHING TARGET SHAPE.",
	"WRONG SHAPES OR MISSES LOSE LIVES.",
	"USE ARROW KEYS [UP/DOWN] TO SWITCH LANES.",
}

// TitleScene 开始画面
// 按空格或回车开始，随后切换到游戏场景
type TitleScene struct {
	sim          *simulation.Simulation
	sceneManager *SceneManager
	next         Scene
	text         *textRenderer

	wallTime float64
}

// NewTitleScene 创建开始画面
//
// 参数：
//   - sim: 模拟实例
//   - sceneManager: 场景管理器
//   - next: 开始后切换到的场景
func NewTitleScene(sim *simulation.Simulation, sceneManager *SceneManager, next Scene) *TitleScene {
	return &TitleScene{
		sim:          sim,
		sceneManager: sceneManager,
		next:         next,
		text:         newTextRenderer(),
	}
}

// Update 等待开始按键
func (s *TitleScene) Update(deltaTime float64) {
	s.wallTime += deltaTime

	var key simulation.Key
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		key = simulation.KeySpace
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		key = simulation.KeyConfirm
	default:
		return
	}

	if s.sim.HandleKey(key) == simulation.CommandStart {
		log.Printf("[TitleScene] 开始游戏")
		s.sceneManager.SwitchTo(s.next)
	}
}

// Draw 绘制开始画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cx := float64(config.GameWindowWidth) / 2
	s.text.drawCentered(screen, "SOLID SORTER", cx, 120, 6, config.AccentColor)

	y := 260.0
	for _, line := range titleInstructions {
		s.text.drawCentered(screen, line, cx, y, 2, config.BinColor)
		y += 40
	}

	// 提示文字闪烁
	if math.Sin(s.wallTime*4) > -0.3 {
		s.text.drawCentered(screen, "PRESS [SPACE] TO START OPERATION", cx, 440, 3, config.BeltEdgeColor)
	}
}
