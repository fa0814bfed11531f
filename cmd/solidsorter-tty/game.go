package main

import (
	"log"
	"time"

	"github.com/decker502/solidsorter/pkg/audio"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/gdamore/tcell/v2"
)

// Game 终端宿主
// 只有 run 所在的 goroutine 调用 Simulation；PollEvent 在后台 goroutine 中读取并经通道转发
type Game struct {
	screen   tcell.Screen
	sim      *simulation.Simulation
	cues     *audio.CuePlayer
	settings *game.SettingsManager
	clock    *simulation.Clock

	width, height int
	wallTime      float64
	beltScroll    float64
}

// NewGame 初始化终端并创建宿主
func NewGame(sim *simulation.Simulation, cues *audio.CuePlayer, settings *game.SettingsManager) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		sim:      sim,
		cues:     cues,
		settings: settings,
		clock:    simulation.NewClock(maxFrameDelta),
	}
	g.width, g.height = screen.Size()
	g.screen.HideCursor()
	g.screen.Show()
	return g, nil
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
			g.toggleMute()
			return true
		}

		if key, ok := mapKey(ev.Key(), ev.Rune()); ok {
			if cmd := g.sim.HandleKey(key); cmd != simulation.CommandNone {
				log.Printf("[TTY] key -> %s", cmd)
			}
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}

	return true
}

// toggleMute 切换静音并保存设置
func (g *Game) toggleMute() {
	enabled := !g.cues.Enabled()
	g.cues.SetEnabled(enabled)
	g.settings.SetSoundEnabled(enabled)
	if err := g.settings.Save(); err != nil {
		log.Printf("[TTY] Warning: failed to save settings: %v", err)
	}
}

// step 推进一帧并播放提示音
func (g *Game) step() {
	dt := g.clock.Tick()

	wasOver := g.sim.State().GameOver
	result := g.sim.Step(dt)
	state := g.sim.State()

	for _, cue := range audio.CuesForStep(result.Outcomes, result.TargetChanged, !wasOver && state.GameOver) {
		g.cues.Play(cue)
	}

	g.wallTime += dt
	if state.IsRunning() {
		g.beltScroll += g.sim.BaseSpeed() * dt
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(g.screen, eventChan, done)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.step()
			g.draw()
		}
	}
}

// pollEvents 在后台读取终端事件并转发到 events
// 终端关闭时关闭 events；done 关闭后立即退出，不再阻塞在发送上
func pollEvents(source eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := source.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// eventSource 终端事件来源
type eventSource interface {
	PollEvent() tcell.Event
}

func (g *Game) cleanup() {
	g.cues.Close()
	g.screen.Fini()
}
