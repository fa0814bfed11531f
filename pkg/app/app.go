// Package app 提供窗口宿主的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载调参、打开设置存储、创建模拟和场景。
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/scenes"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/decker502/solidsorter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 调参文件路径，为空则使用内置配置
	TuningPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是窗口宿主的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	settingsManager          *game.SettingsManager
	sim                      *simulation.Simulation
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.TuningPath)
	if err != nil {
		return nil, err
	}

	// 设置存储打不开时退化为仅内存
	gdataManager, err := game.OpenSettingsStorage(game.SettingsAppName)
	if err != nil {
		log.Printf("[App] 警告: 设置存储不可用: %v", err)
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)
	sim := simulation.New(tuning, systems.NewSeededSource(seed))

	// 初始化音频上下文
	audioContext := audio.NewContext(int(toneSampleRate))
	toneBank := NewToneBank(audioContext, settingsManager)
	log.Printf("[App] ToneBank initialized")

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager()
	gameScene := scenes.NewGameScene(sim, toneBank, settingsManager)
	sceneManager.SwitchTo(scenes.NewTitleScene(sim, sceneManager, gameScene))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		sim:             sim,
		verbose:         cfg.Verbose,
	}, nil
}

// loadTuning 加载调参文件，路径为空时使用内置配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path == "" {
		tuning, err := config.EmbeddedTuning()
		if err != nil {
			return nil, fmt.Errorf("内置调参加载失败: %w", err)
		}
		return tuning, nil
	}

	tuning, err := config.LoadTuning(path)
	if err != nil {
		return nil, fmt.Errorf("调参文件加载失败: %w", err)
	}
	log.Printf("[Config] 加载调参文件: %s", path)
	return tuning, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Simulation 返回模拟实例
func (a *App) Simulation() *simulation.Simulation {
	return a.sim
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
