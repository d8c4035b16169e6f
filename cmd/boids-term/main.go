package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/terminal"
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

	// stdout belongs to the screen
	logger := cfg.NewLogger(os.Stderr)
	sim := simulation.New(cfg, simulation.WithLogger(logger))
	sim.Init()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("💥💥 ERROR: creating terminal screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminal.NewHost(screen, sim, logger).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
