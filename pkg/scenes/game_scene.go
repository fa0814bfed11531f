package scenes

import (
	"log"

	"github.com/decker502/solidsorter/pkg/audio"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CueSink 提示音输出
type CueSink interface {
	Play(cue audio.Cue)
}

// keyBinding Ebitengine 按键到模拟按键的映射
type keyBinding struct {
	key ebiten.Key
	sim simulation.Key
}

// gameKeyBindings 游戏场景的按键映射
var gameKeyBindings = []keyBinding{
	{ebiten.KeySpace, simulation.KeySpace},
	{ebiten.KeyEnter, simulation.KeyConfirm},
	{ebiten.KeyNumpadEnter, simulation.KeyConfirm},
	{ebiten.KeyR, simulation.KeyRetry},
	{ebiten.KeyArrowUp, simulation.KeyUp},
	{ebiten.KeyW, simulation.KeyUp},
	{ebiten.KeyArrowDown, simulation.KeyDown},
	{ebiten.KeyS, simulation.KeyDown},
}

// GameScene 游戏主场景
// 负责把键盘输入转发给模拟、推进模拟、播放提示音，并绘制传送带、物体和 HUD
type GameScene struct {
	sim      *simulation.Simulation
	cues     CueSink
	settings *game.SettingsManager
	text     *textRenderer

	// wallTime 场景累计墙钟时间，用于闪烁等纯视觉效果
	wallTime float64

	// beltScroll 传送带边缘条纹的滚动偏移（世界单位），暂停时冻结
	beltScroll float64
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - sim: 模拟实例
//   - cues: 提示音输出，可为 nil
//   - settings: 设置管理器，用于持久化调试开关
func NewGameScene(sim *simulation.Simulation, cues CueSink, settings *game.SettingsManager) *GameScene {
	return &GameScene{
		sim:      sim,
		cues:     cues,
		settings: settings,
		text:     newTextRenderer(),
	}
}

// Update 处理输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleInput()

	wasOver := s.sim.State().GameOver
	result := s.sim.Step(deltaTime)
	state := s.sim.State()

	becameOver := !wasOver && state.GameOver
	if becameOver {
		log.Printf("[GameScene] 游戏结束，最终得分 %d", state.Score)
	}
	s.playCues(result, becameOver)

	s.wallTime += deltaTime
	if state.IsRunning() {
		s.beltScroll += s.sim.BaseSpeed() * deltaTime
	}
}

// handleInput 处理本帧按下的键
func (s *GameScene) handleInput() {
	for _, b := range gameKeyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if cmd := s.sim.HandleKey(b.sim); cmd != simulation.CommandNone {
			log.Printf("[GameScene] 按键 %s -> %s", b.key, cmd)
		}
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		show := !s.settings.GetSettings().ShowDebug
		s.settings.SetShowDebug(show)
		if err := s.settings.Save(); err != nil {
			log.Printf("[GameScene] 保存设置失败: %v", err)
		}
	}
}

// playCues 播放本帧的提示音
func (s *GameScene) playCues(result simulation.StepResult, becameOver bool) {
	if s.cues == nil {
		return
	}
	for _, cue := range audio.CuesForStep(result.Outcomes, result.TargetChanged, becameOver) {
		s.cues.Play(cue)
	}
}

// Draw 绘制游戏画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	state := s.sim.State()

	s.drawWorld(screen, state)
	s.drawHUD(screen, state)
	s.drawFlash(screen, state)

	switch {
	case state.GameOver:
		s.drawGameOver(screen, state)
	case state.IsPaused:
		s.drawPaused(screen)
	case state.Score == 0:
		s.drawHint(screen)
	}

	if s.settings.GetSettings().ShowDebug {
		s.drawDebug(screen)
	}
}
