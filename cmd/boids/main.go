package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/game"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (defaults are used when empty)")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		loaded, err := simulation.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("💥💥 ERROR: loading config %q: %v", *configPath, err)
		}
		cfg = loaded
	}

	logger := cfg.NewLogger(os.Stdout)
	sim := simulation.New(cfg, simulation.WithLogger(logger))
	sim.Init()

	bounds := cfg.Bounds()
	ebiten.SetWindowSize(int(bounds.Width), int(bounds.Height))
	ebiten.SetWindowTitle("Boids: Flocking Simulation")
	ebiten.SetTPS(cfg.TicksPerSecond)

	if err := ebiten.RunGame(game.New(sim, logger)); err != nil {
		log.Fatal(err)
	}
}
