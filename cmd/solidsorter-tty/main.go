// solidsorter-tty 在终端中运行 SOLID SORTER
//
// 用法：
//
//	go run ./cmd/solidsorter-tty [-seed N] [-config tuning.yaml] [-verbose]
//
// 按键：空格开始 / 暂停，↑/↓ 或 W/S 切换传送带，回车或 R 重新开局，M 静音，Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/solidsorter/pkg/audio"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/decker502/solidsorter/pkg/systems"
)

// maxFrameDelta 单帧最大时间增量（秒）
const maxFrameDelta = 0.1

func main() {
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	tuningPath := flag.String("config", "", "Path to a tuning YAML file (default: built-in tuning)")
	verbose := flag.Bool("verbose", false, "Write logs to -log file")
	logPath := flag.String("log", "solidsorter-tty.log", "Log file used with -verbose")
	flag.Parse()

	// 终端被游戏画面占用，日志只能写文件
	if *verbose {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[Main] Random seed: %d", *seed)

	gdataManager, err := game.OpenSettingsStorage(game.SettingsAppName)
	if err != nil {
		log.Printf("[Main] Warning: settings storage unavailable: %v", err)
	}
	settings := game.NewSettingsManager(gdataManager)

	cues := audio.NewCuePlayer(settings.GetSettings().SoundEnabled, settings.GetSettings().SoundVolume)
	if err := cues.Initialize(); err != nil {
		log.Printf("[Main] Warning: %v (audio disabled)", err)
	}

	sim := simulation.New(tuning, systems.NewSeededSource(*seed))
	g, err := NewGame(sim, cues, settings)
	if err != nil {
		cues.Close()
		fmt.Fprintf(os.Stderr, "failed to init terminal: %v\n", err)
		os.Exit(1)
	}

	g.run()
	g.cleanup()

	state := sim.State()
	fmt.Printf("SOLID SORTER  score: %d  lives: %d\n", state.Score, state.Lives)
}

// loadTuning 加载调参文件，路径为空时使用内置配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path == "" {
		return config.EmbeddedTuning()
	}
	tuning, err := config.LoadTuning(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning: %w", err)
	}
	return tuning, nil
}
