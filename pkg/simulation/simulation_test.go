package simulation

import (
	"math"
	"reflect"
	"testing"

	"github.com/decker502/solidsorter/pkg/components"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/systems"
	"github.com/decker502/solidsorter/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

const testDT = 1.0 / 60.0

// createTestSimulation 创建已开始的测试模拟
func createTestSimulation(t *testing.T, seed int64, mutate func(cfg *config.TuningConfig)) *Simulation {
	t.Helper()
	cfg := config.DefaultTuning()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	sim := New(cfg, systems.NewSeededSource(seed))
	sim.Start()
	return sim
}

// injectFallingItem 在接取区放置一个下落中的物体
func injectFallingItem(sim *Simulation, shape types.ShapeType, lane int, pos mgl64.Vec3) ecs.EntityID {
	em := sim.entityManager
	id := em.CreateEntity()
	em.AddComponent(id, &components.ConveyorItemComponent{Shape: shape, LaneIndex: lane, Phase: components.PhaseFalling})
	em.AddComponent(id, &components.PositionComponent{Position: pos})
	em.AddComponent(id, &components.VelocityComponent{Velocity: mgl64.Vec2{0, 0}})
	return id
}

// otherShape 返回形状池中与 shape 不同的一个形状
func otherShape(sim *Simulation, shape types.ShapeType) types.ShapeType {
	for _, s := range sim.Config().Shapes {
		if s != shape {
			return s
		}
	}
	return types.ShapeUnknown
}

func runFor(sim *Simulation, seconds float64) {
	ticks := int(math.Round(seconds / testDT))
	for i := 0; i < ticks; i++ {
		sim.Step(testDT)
	}
}

func TestSimulation_IdleBeforeStart(t *testing.T) {
	sim := New(config.DefaultTuning(), systems.NewSeededSource(1))

	for i := 0; i < 120; i++ {
		result := sim.Step(testDT)
		if len(result.Spawned) != 0 || len(result.Outcomes) != 0 {
			t.Fatalf("Expected no activity before start, got %+v", result)
		}
	}
	if sim.ActiveTime() != 0 {
		t.Errorf("Expected active time 0 before start, got %.3f", sim.ActiveTime())
	}

	// 未开始时不能暂停，也不能移动
	if sim.TogglePause() {
		t.Error("Expected TogglePause to be ignored before start")
	}
	if sim.MoveUp() {
		t.Error("Expected MoveUp to be ignored before start")
	}

	if !sim.Start() {
		t.Fatal("Expected first Start to succeed")
	}
	if sim.Start() {
		t.Error("Expected second Start to be a no-op")
	}
}

func TestSimulation_FirstTickSpawnsCenterLane(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)

	result := sim.Step(testDT)
	if len(result.Spawned) != 1 {
		t.Fatalf("Expected 1 spawn on first tick, got %d", len(result.Spawned))
	}

	objects := sim.Objects()
	if len(objects) != 1 || objects[0].ID != result.Spawned[0] {
		t.Fatalf("Expected spawned object in Objects(), got %+v", objects)
	}
	if objects[0].Lane != sim.Config().CenterLane() {
		t.Errorf("Expected center lane, got %d", objects[0].Lane)
	}
	if objects[0].Position.Z() != 0 {
		t.Errorf("Expected z=0, got %.2f", objects[0].Position.Z())
	}
}

func TestSimulation_ScenarioF_LaneClamp(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)

	if sim.Player().Lane != 1 {
		t.Fatalf("Expected start lane 1, got %d", sim.Player().Lane)
	}
	sim.MoveUp()
	if sim.Player().Lane != 0 || sim.State().PlayerLaneZ != -10 {
		t.Errorf("Expected lane 0 after move-up, got %+v", sim.Player())
	}
	sim.MoveUp()
	if sim.Player().Lane != 0 {
		t.Errorf("Expected clamped at lane 0, got %d", sim.Player().Lane)
	}
	sim.MoveDown()
	sim.MoveDown()
	sim.MoveDown()
	if sim.Player().Lane != 2 || sim.State().PlayerLaneZ != 10 {
		t.Errorf("Expected clamped at lane 2, got %+v", sim.Player())
	}
}

func TestSimulation_ScenarioE_GameOverDiscardsLaterOutcomes(t *testing.T) {
	sim := createTestSimulation(t, 3, func(cfg *config.TuningConfig) {
		cfg.LivesStart = 1
	})

	target := sim.State().TargetShape
	wrong := injectFallingItem(sim, otherShape(sim, target), 1, mgl64.Vec3{9, 2, 0})
	right := injectFallingItem(sim, target, 1, mgl64.Vec3{9, 2.5, 0})

	result := sim.Step(testDT)

	// 第二个结果在结束后被丢弃，不再上报
	if len(result.Outcomes) != 1 || result.Outcomes[0].Entity != wrong {
		t.Fatalf("Expected only the wrong catch reported, got %v", result.Outcomes)
	}
	state := sim.State()
	if state.Lives != 0 || !state.GameOver {
		t.Errorf("Expected lives=0 and game over, got lives=%d over=%v", state.Lives, state.GameOver)
	}
	if state.Score != 0 || state.TargetCatchCount != 0 {
		t.Errorf("Expected later catch discarded, got score=%d count=%d", state.Score, state.TargetCatchCount)
	}

	removed := map[ecs.EntityID]bool{}
	for _, id := range result.Removed {
		removed[id] = true
	}
	if !removed[wrong] || !removed[right] {
		t.Errorf("Expected both resolved objects removed, got %v", result.Removed)
	}

	// 结束后模拟不再推进
	activeTime := sim.ActiveTime()
	injectFallingItem(sim, target, 1, mgl64.Vec3{9, 2, 0})
	runFor(sim, 1)
	if sim.ActiveTime() != activeTime {
		t.Errorf("Expected active time frozen after game over")
	}
	if got := sim.State(); got.Score != 0 || got.Lives != 0 {
		t.Errorf("Expected no change after game over, got %+v", got)
	}
	if sim.TogglePause() {
		t.Error("Expected TogglePause ignored after game over")
	}
}

func TestSimulation_CatchTargetScoresAndFlashes(t *testing.T) {
	sim := createTestSimulation(t, 5, nil)
	target := sim.State().TargetShape

	injectFallingItem(sim, target, 1, mgl64.Vec3{9, 2, 0})
	sim.Step(testDT)

	state := sim.State()
	if state.Score != 100 || state.Lives != 5 || state.TargetCatchCount != 1 {
		t.Errorf("Expected score=100 lives=5 count=1, got %+v", state)
	}
	if state.Flash != game.FlashPositive {
		t.Errorf("Expected positive flash, got %s", state.Flash)
	}
}

func TestSimulation_RotationResetsDeadline(t *testing.T) {
	sim := createTestSimulation(t, 11, func(cfg *config.TuningConfig) {
		// 单一形状的池：轮换必然抽到同一形状，期限不应重置
		cfg.Shapes = []types.ShapeType{types.ShapeBox}
	})

	// 第一帧中间传送带生成（可能延长期限），之后约 1.8 秒内不会再生成
	sim.Step(testDT)

	for i := 0; i < 3; i++ {
		injectFallingItem(sim, types.ShapeBox, 1, mgl64.Vec3{9, 2, 0})
	}
	deadline := sim.TargetDeadline()
	result := sim.Step(testDT)

	if sim.State().TargetCatchCount != 0 {
		t.Errorf("Expected count reset after third catch, got %d", sim.State().TargetCatchCount)
	}
	if result.TargetChanged {
		t.Error("Expected same-shape rotation not to count as a change")
	}
	if sim.TargetDeadline() != deadline {
		t.Errorf("Expected deadline unchanged, got %.2f -> %.2f", deadline, sim.TargetDeadline())
	}
}

func TestSimulation_PauseFreezes(t *testing.T) {
	sim := createTestSimulation(t, 7, nil)
	runFor(sim, 4)

	if !sim.TogglePause() {
		t.Fatal("Expected pause to be accepted")
	}
	activeTime := sim.ActiveTime()
	objects := sim.Objects()
	speed := sim.BaseSpeed()

	sim.MoveDown()
	runFor(sim, 3)

	if sim.ActiveTime() != activeTime {
		t.Errorf("Expected active time frozen, got %.3f -> %.3f", activeTime, sim.ActiveTime())
	}
	if !reflect.DeepEqual(sim.Objects(), objects) {
		t.Error("Expected objects frozen while paused")
	}
	if sim.BaseSpeed() != speed {
		t.Error("Expected base speed frozen while paused")
	}
	if sim.Player().Lane != 1 {
		t.Errorf("Expected movement ignored while paused, got lane %d", sim.Player().Lane)
	}

	sim.TogglePause()
	runFor(sim, 0.5)
	if sim.ActiveTime() <= activeTime {
		t.Error("Expected active time to advance after resume")
	}
}

func TestSimulation_FlashClearsOnWallTimeWhilePaused(t *testing.T) {
	sim := createTestSimulation(t, 9, nil)
	injectFallingItem(sim, sim.State().TargetShape, 1, mgl64.Vec3{9, 2, 0})
	sim.Step(testDT)

	if sim.State().Flash != game.FlashPositive {
		t.Fatalf("Expected positive flash, got %s", sim.State().Flash)
	}

	sim.TogglePause()
	sim.Step(0.1)
	if sim.State().Flash != game.FlashPositive {
		t.Errorf("Expected flash kept before 0.2s, got %s", sim.State().Flash)
	}
	sim.Step(0.11)
	if sim.State().Flash != game.FlashNone {
		t.Errorf("Expected flash cleared after 0.2s of wall time, got %s", sim.State().Flash)
	}
}

func TestSimulation_Restart(t *testing.T) {
	sim := createTestSimulation(t, 13, nil)
	sim.MoveDown()
	runFor(sim, 10)

	before := sim.Objects()
	if len(before) == 0 {
		t.Fatal("Expected objects on the belts after 10s")
	}

	sim.Restart()

	state := sim.State()
	if !state.HasStarted || state.GameOver || state.IsPaused {
		t.Errorf("Expected running state after restart, got %+v", state)
	}
	if state.Score != 0 || state.Lives != 5 || state.TargetCatchCount != 0 {
		t.Errorf("Expected fresh score/lives/count, got %+v", state)
	}
	if state.PlayerLaneZ != 0 || sim.Player().Lane != 1 {
		t.Errorf("Expected player back at start lane, got %+v", sim.Player())
	}
	if len(sim.Objects()) != 0 {
		t.Errorf("Expected belts cleared, got %d objects", len(sim.Objects()))
	}
	if sim.ActiveTime() != 0 || sim.BaseSpeed() != 4.5 || sim.TargetDeadline() != 5.0 {
		t.Errorf("Expected clock/speed/deadline reset, got t=%.2f speed=%.3f deadline=%.2f",
			sim.ActiveTime(), sim.BaseSpeed(), sim.TargetDeadline())
	}

	result := sim.Step(testDT)
	removed := map[ecs.EntityID]bool{}
	for _, id := range result.Removed {
		removed[id] = true
	}
	for _, obj := range before {
		if !removed[obj.ID] {
			t.Errorf("Expected cleared object %d reported in Removed", obj.ID)
		}
	}
	if len(result.Spawned) != 1 {
		t.Errorf("Expected center lane to spawn right after restart, got %d", len(result.Spawned))
	}
}

func TestSimulation_Deterministic(t *testing.T) {
	a := createTestSimulation(t, 42, nil)
	b := createTestSimulation(t, 42, nil)

	for i := 0; i < 600; i++ {
		ra := a.Step(testDT)
		rb := b.Step(testDT)
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("tick %d: results diverged", i)
		}
	}
	if !reflect.DeepEqual(a.Objects(), b.Objects()) || a.State() != b.State() {
		t.Error("Expected identical simulations for the same seed")
	}
}

func TestSimulation_LaneCapacityInvariant(t *testing.T) {
	sim := createTestSimulation(t, 21, func(cfg *config.TuningConfig) {
		cfg.LivesStart = 1 << 20
		cfg.Spawn.SpawnChance = 1
		cfg.Lanes.ClearDistance = 0
	})

	for i := 0; i < 60*60; i++ {
		sim.Step(testDT)
		counts := make([]int, config.LaneCount)
		for _, obj := range sim.Objects() {
			if obj.Phase != components.PhaseFalling {
				counts[obj.Lane]++
			}
		}
		for lane, c := range counts {
			if c > sim.Config().Lanes.Capacity {
				t.Fatalf("tick %d: lane %d holds %d non-falling objects", i, lane, c)
			}
		}
	}
}

// spawnChanceSlack 目标逾期且唯一可用传送带非空时，等待 2% 概率命中的余量（秒）
// 120 个 tick 都未命中的概率为 0.98^120 ≈ 9%；三条传送带同时可用时约为 0.07%
const spawnChanceSlack = 2.0

// TestSimulation_TargetGuarantee 测试目标保证窗口
//
// 期限只强制下一次生成，不会凭空生成：
// 逾期后还要等一条传送带满足间距（LaneClearTime），非空传送带再按概率生成。
// 因此相邻两次目标出现的间隔上限为 保证窗口 + LaneClearTime + spawnChanceSlack。
func TestSimulation_TargetGuarantee(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		sim := createTestSimulation(t, seed, func(cfg *config.TuningConfig) {
			cfg.LivesStart = 1 << 20
		})

		lastSeen := 0.0
		maxGap := 0.0
		for i := 0; i < 120*60; i++ {
			before := sim.State()
			deadline := sim.TargetDeadline()

			result := sim.Step(testDT)
			now := sim.ActiveTime()

			spawnedTarget := false
			objects := map[ecs.EntityID]ObjectView{}
			for _, obj := range sim.Objects() {
				objects[obj.ID] = obj
			}
			for _, id := range result.Spawned {
				if objects[id].Shape == before.TargetShape {
					spawnedTarget = true
				}
			}

			// 超过期限后的第一次生成必然是目标
			if len(result.Spawned) > 0 && now >= deadline && !spawnedTarget {
				t.Fatalf("seed %d t=%.2f: spawn after deadline %.2f was not the target", seed, now, deadline)
			}
			if sim.TargetDeadline() > now+sim.Config().Target.GuaranteeWindow+1e-9 {
				t.Fatalf("seed %d: deadline %.2f too far from now %.2f", seed, sim.TargetDeadline(), now)
			}

			if spawnedTarget || result.TargetChanged {
				maxGap = math.Max(maxGap, now-lastSeen)
				lastSeen = now
			}
		}

		cfg := sim.Config()
		bound := cfg.Target.GuaranteeWindow + cfg.LaneClearTime() + spawnChanceSlack
		if maxGap > bound {
			t.Errorf("seed %d: longest gap between target spawns %.2fs exceeds %.2fs", seed, maxGap, bound)
		}
	}
}

func TestSimulation_AutopilotCatchesTargets(t *testing.T) {
	sim := createTestSimulation(t, 5, func(cfg *config.TuningConfig) {
		cfg.LivesStart = 1 << 20
	})
	pilot := NewAutopilot(sim)

	for i := 0; i < 60*60; i++ {
		pilot.Steer()
		sim.Step(testDT)
	}

	if sim.State().Score == 0 {
		t.Error("Expected autopilot to catch at least one target in 60s")
	}
}
