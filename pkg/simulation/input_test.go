package simulation

import (
	"testing"

	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/systems"
)

func TestCommandForKey(t *testing.T) {
	idle := game.GameState{}
	running := game.GameState{HasStarted: true}
	paused := game.GameState{HasStarted: true, IsPaused: true}
	over := game.GameState{HasStarted: true, GameOver: true}

	tests := []struct {
		name  string
		key   Key
		state game.GameState
		want  Command
	}{
		{"空格开始", KeySpace, idle, CommandStart},
		{"空格暂停", KeySpace, running, CommandTogglePause},
		{"空格继续", KeySpace, paused, CommandTogglePause},
		{"结束后空格无效", KeySpace, over, CommandNone},
		{"回车开始", KeyConfirm, idle, CommandStart},
		{"进行中回车无效", KeyConfirm, running, CommandNone},
		{"结束后回车重开", KeyConfirm, over, CommandRestart},
		{"进行中 R 无效", KeyRetry, running, CommandNone},
		{"结束后 R 重开", KeyRetry, over, CommandRestart},
		{"上移", KeyUp, running, CommandMoveUp},
		{"下移", KeyDown, paused, CommandMoveDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandForKey(tt.key, tt.state); got != tt.want {
				t.Errorf("CommandForKey() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHandleKeyFlow(t *testing.T) {
	cfg := config.DefaultTuning()
	cfg.LivesStart = 1
	sim := New(cfg, systems.NewSeededSource(3))

	if cmd := sim.HandleKey(KeySpace); cmd != CommandStart || !sim.State().HasStarted {
		t.Fatalf("Expected space to start, got %s", cmd)
	}
	if cmd := sim.HandleKey(KeySpace); cmd != CommandTogglePause || !sim.State().IsPaused {
		t.Fatalf("Expected space to pause, got %s", cmd)
	}
	// 暂停时移动被忽略
	sim.HandleKey(KeyUp)
	if sim.Player().Lane != 1 {
		t.Errorf("Expected lane unchanged while paused, got %d", sim.Player().Lane)
	}
	sim.HandleKey(KeySpace)
	sim.HandleKey(KeyUp)
	if sim.Player().Lane != 0 {
		t.Errorf("Expected lane 0 after resume, got %d", sim.Player().Lane)
	}
}
