package systems

import (
	"testing"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

func TestMotionSystem_SpawningArc(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMotionSystem(em, testTuning().Physics)
	id := addTestItem(em, types.ShapeBox, 0, components.PhaseSpawning, mgl64.Vec3{-16, 10, -10}, mgl64.Vec2{4.5, 0})

	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !almostEqual(vel.Velocity.Y(), -3.5) {
		t.Errorf("Expected vy=-3.5, got %.4f", vel.Velocity.Y())
	}
	if !almostEqual(pos.Position.Y(), 9.65) {
		t.Errorf("Expected y=9.65, got %.4f", pos.Position.Y())
	}
	// 出料阶段使用固定漂移速度，而不是传送带速度
	if !almostEqual(pos.Position.X(), -15.8) {
		t.Errorf("Expected x=-15.8, got %.4f", pos.Position.X())
	}
}

func TestMotionSystem_Landing(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMotionSystem(em, testTuning().Physics)
	id := addTestItem(em, types.ShapeCone, 2, components.PhaseSpawning, mgl64.Vec3{-16, 10, 10}, mgl64.Vec2{4.95, 0})

	item, _ := ecs.GetComponent[*components.ConveyorItemComponent](em, id)
	for i := 0; i < 120 && item.Phase == components.PhaseSpawning; i++ {
		system.Update(1.0 / 60.0)
	}

	if item.Phase != components.PhaseTraveling {
		t.Fatalf("Expected Traveling after landing, got %s", item.Phase)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if pos.Position.Y() != 5 {
		t.Errorf("Expected y snapped to 5, got %.4f", pos.Position.Y())
	}
	if vel.Velocity.Y() != 0 {
		t.Errorf("Expected vy=0 after landing, got %.4f", vel.Velocity.Y())
	}
	if vel.Velocity.X() != 4.95 {
		t.Errorf("Expected belt speed preserved, got %.4f", vel.Velocity.X())
	}
	if pos.Position.Z() != 10 {
		t.Errorf("Expected z unchanged, got %.4f", pos.Position.Z())
	}
}

func TestMotionSystem_Traveling(t *testing.T) {
	tests := []struct {
		name      string
		startX    float64
		wantPhase components.ItemPhase
		wantVY    float64
	}{
		{"未到末端继续前进", 4.0, components.PhaseTraveling, 0},
		{"越过末端开始下落", 4.9, components.PhaseFalling, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			system := NewMotionSystem(em, testTuning().Physics)
			id := addTestItem(em, types.ShapeSphere, 1, components.PhaseTraveling, mgl64.Vec3{tt.startX, 5, 0}, mgl64.Vec2{4.5, 0})

			system.Update(0.1)

			item, _ := ecs.GetComponent[*components.ConveyorItemComponent](em, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if item.Phase != tt.wantPhase {
				t.Errorf("Expected phase %s, got %s", tt.wantPhase, item.Phase)
			}
			if !almostEqual(pos.Position.X(), tt.startX+0.45) {
				t.Errorf("Expected x=%.2f, got %.4f", tt.startX+0.45, pos.Position.X())
			}
			if pos.Position.Y() != 5 {
				t.Errorf("Expected y to stay on belt, got %.4f", pos.Position.Y())
			}
			if vel.Velocity.Y() != tt.wantVY {
				t.Errorf("Expected vy=%.1f, got %.4f", tt.wantVY, vel.Velocity.Y())
			}
		})
	}
}

func TestMotionSystem_Falling(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMotionSystem(em, testTuning().Physics)
	id := addTestItem(em, types.ShapeTorus, 1, components.PhaseFalling, mgl64.Vec3{6, 5, 0}, mgl64.Vec2{4.5, 6})

	system.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !almostEqual(vel.Velocity.Y(), 2.5) {
		t.Errorf("Expected vy=2.5, got %.4f", vel.Velocity.Y())
	}
	if !almostEqual(pos.Position.Y(), 5.25) {
		t.Errorf("Expected y=5.25, got %.4f", pos.Position.Y())
	}
	if !almostEqual(pos.Position.X(), 6.45) {
		t.Errorf("Expected x=6.45, got %.4f", pos.Position.X())
	}
}

func TestMotionSystem_FallingReachesCatchWindow(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMotionSystem(em, testTuning().Physics)
	id := addTestItem(em, types.ShapeBox, 1, components.PhaseTraveling, mgl64.Vec3{4.99, 5, 0}, mgl64.Vec2{4.5, 0})

	// 以 60 FPS 推进，物体应在 x 接近接取箱时进入 (0, 4) 高度区间
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	entered := false
	for i := 0; i < 120; i++ {
		system.Update(1.0 / 60.0)
		if pos.Position.Y() > 0 && pos.Position.Y() < 4 && pos.Position.X() > 7 && pos.Position.X() < 11 {
			entered = true
			break
		}
	}
	if !entered {
		t.Errorf("Expected falling item to pass through the catch window, last position %v", pos.Position)
	}
}
