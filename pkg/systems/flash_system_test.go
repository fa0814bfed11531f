package systems

import (
	"testing"

	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
)

func TestFlashSystem_ClearsAfterDuration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashSystem(em, 0.2)
	state := &game.GameState{Flash: game.FlashPositive}

	id := system.Trigger()

	if fired := system.Update(0.15, state); fired != 0 {
		t.Fatalf("Expected timer pending at 0.15s, fired=%d", fired)
	}
	if state.Flash != game.FlashPositive {
		t.Errorf("Expected flash kept before expiry, got %s", state.Flash)
	}

	if fired := system.Update(0.1, state); fired != 1 {
		t.Fatalf("Expected timer to fire at 0.25s, fired=%d", fired)
	}
	if state.Flash != game.FlashNone {
		t.Errorf("Expected flash cleared, got %s", state.Flash)
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Expected expired timer entity to be destroyed")
	}
	if system.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", system.Pending())
	}
}

func TestFlashSystem_EachTimerClearsCurrentFlash(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashSystem(em, 0.2)
	state := &game.GameState{Flash: game.FlashPositive}

	system.Trigger()
	system.Update(0.1, state)

	// 第二个事件覆盖闪屏信号，但第一个计时器到期时仍会清除它
	state.Flash = game.FlashNegative
	system.Trigger()

	system.Update(0.15, state)
	if state.Flash != game.FlashNone {
		t.Errorf("Expected first timer to clear the current flash, got %s", state.Flash)
	}
	if system.Pending() != 1 {
		t.Errorf("Expected second timer pending, got %d", system.Pending())
	}
}
