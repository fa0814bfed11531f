// verify_target_guarantee 无头运行模拟，统计目标形状的出现间隔
//
// 用法：
//
//	go run ./cmd/verify_target_guarantee -seed 42 -seconds 600 -autopilot
//
// 输出每条传送带的物体数峰值、目标轮换次数、强制生成次数和目标形状最长出现间隔。
// 任一传送带超过容量时以非零状态退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/ecs"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/decker502/solidsorter/pkg/systems"
)

var (
	seed      = flag.Int64("seed", 1, "随机种子")
	seconds   = flag.Float64("seconds", 300, "模拟时长（活动时间，秒）")
	autopilot = flag.Bool("autopilot", false, "启用自动驾驶接取目标")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	tuning    = flag.String("config", "", "调参文件路径（默认使用内置配置）")
)

// tickRate 固定步长（与窗口宿主一致）
const tickRate = 60

// spawnChanceSlack 逾期后等待非空传送带按概率生成的余量（秒）
// 单条可用传送带 120 个 tick 都未命中的概率约为 9%
const spawnChanceSlack = 2.0

// targetGapBound 目标出现间隔的上限
// 期限只强制下一次生成：保证窗口 + 等待传送带满足间距 + 概率生成余量
func targetGapBound(cfg *config.TuningConfig) float64 {
	return cfg.Target.GuaranteeWindow + cfg.LaneClearTime() + spawnChanceSlack
}

// Report 一次无头运行的统计结果
type Report struct {
	Ticks        int
	ActiveTime   float64
	Spawns       int
	TargetSpawns int
	ForcedSpawns int
	Rotations    int
	Catches      int
	WrongCatches int
	MissedTarget int
	Score        int

	// LanePeaks 每条传送带未下落物体数的峰值
	LanePeaks []int

	// MaxTargetGap 当前目标两次出现之间（或目标切换到首次出现）的最长活动时间
	MaxTargetGap float64
}

// run 运行模拟直到活动时间达到 duration
func run(cfg *config.TuningConfig, seed int64, duration float64, steer bool) Report {
	cfg = cfg.Clone()
	// 生命足够多，整局不会结束
	cfg.LivesStart = 1 << 30

	sim := simulation.New(cfg, systems.NewSeededSource(seed))
	sim.Start()

	var pilot *simulation.Autopilot
	if steer {
		pilot = simulation.NewAutopilot(sim)
	}

	report := Report{LanePeaks: make([]int, config.LaneCount)}
	lastTargetSeen := 0.0
	dt := 1.0 / tickRate

	for sim.ActiveTime() < duration {
		if pilot != nil {
			pilot.Steer()
		}

		before := sim.State().TargetShape
		result := sim.Step(dt)
		report.Ticks++
		now := sim.ActiveTime()

		for _, o := range result.Outcomes {
			switch {
			case o.IsCatch() && o.Shape == before:
				report.Catches++
			case o.IsCatch():
				report.WrongCatches++
			case o.Shape == before:
				report.MissedTarget++
			}
		}

		if len(result.Spawned) > 0 {
			spawned := make(map[ecs.EntityID]bool, len(result.Spawned))
			for _, id := range result.Spawned {
				spawned[id] = true
			}
			for _, obj := range sim.Objects() {
				if !spawned[obj.ID] {
					continue
				}
				report.Spawns++
				if obj.Shape == before {
					report.TargetSpawns++
					if gap := now - lastTargetSeen; gap > report.MaxTargetGap {
						report.MaxTargetGap = gap
					}
					lastTargetSeen = now
				}
			}
		}

		if result.TargetChanged {
			report.Rotations++
			lastTargetSeen = now
		}

		for i, lane := range sim.LaneStates() {
			if i < len(report.LanePeaks) && lane.ActiveCount > report.LanePeaks[i] {
				report.LanePeaks[i] = lane.ActiveCount
			}
		}
	}

	report.ActiveTime = sim.ActiveTime()
	report.ForcedSpawns = sim.ForcedSpawns()
	report.Score = sim.State().Score
	return report
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultTuning()
	if *tuning != "" {
		loaded, err := config.LoadTuning(*tuning)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("加载调参失败: %v", err)
		}
		cfg = loaded
	}

	report := run(cfg, *seed, *seconds, *autopilot)

	fmt.Println("=== Target Guarantee Report ===")
	fmt.Printf("seed: %d  autopilot: %v\n", *seed, *autopilot)
	fmt.Printf("ticks: %d  active time: %.2fs\n", report.Ticks, report.ActiveTime)
	fmt.Printf("spawns: %d  target spawns: %d  forced: %d\n", report.Spawns, report.TargetSpawns, report.ForcedSpawns)
	fmt.Printf("rotations: %d  catches: %d  wrong: %d  missed targets: %d  score: %d\n",
		report.Rotations, report.Catches, report.WrongCatches, report.MissedTarget, report.Score)
	fmt.Printf("longest target gap: %.2fs (window %.1fs, lane clear %.2fs, bound %.2fs)\n",
		report.MaxTargetGap, cfg.Target.GuaranteeWindow, cfg.LaneClearTime(), targetGapBound(cfg))

	ok := true
	for i, peak := range report.LanePeaks {
		status := "OK"
		if peak > cfg.Lanes.Capacity {
			status = "OVER CAPACITY"
			ok = false
		}
		fmt.Printf("lane %d peak: %d/%d %s\n", i, peak, cfg.Lanes.Capacity, status)
	}

	if !ok {
		os.Exit(1)
	}
}
