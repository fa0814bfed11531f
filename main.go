package main

import (
	"flag"
	"log"

	"github.com/decker502/solidsorter/pkg/app"
	"github.com/decker502/solidsorter/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	tuningPath := flag.String("config", "", "Path to a tuning YAML file (default: built-in tuning)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("SOLID SORTER")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
