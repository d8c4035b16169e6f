// Package terminal runs a simulation on a tcell screen.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	golog "github.com/tochemey/goakt/v3/log"
	"golang.org/x/sync/errgroup"

	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/render"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
)

// Host drives a Simulation at a fixed tick rate and draws it on a terminal
// screen. Keyboard input only ever stops the host.
type Host struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	logger golog.Logger
	every  time.Duration
}

// NewHost creates a host for sim. screen must not be initialized yet.
func NewHost(screen tcell.Screen, sim *simulation.Simulation, logger golog.Logger) *Host {
	tps := sim.Config().TicksPerSecond
	if tps <= 0 {
		tps = simulation.DefaultConfig().TicksPerSecond
	}
	return &Host{
		screen: screen,
		sim:    sim,
		logger: logger,
		every:  time.Second / time.Duration(tps),
	}
}

// Run initializes the screen and ticks until ctx is done or the user quits
// with q, Esc or Ctrl-C. Quitting is not an error.
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer h.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pollInput(h.screen, cancel)
		return nil
	})

	g.Go(func() error {
		// wake pollInput up when the ticks stop for another reason
		defer h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		ticker := time.NewTicker(h.every)
		defer ticker.Stop()
		return h.sim.Run(ctx, ticker.C, render.NewTerminal(h.screen, h.sim.Bounds()))
	})

	err := g.Wait()
	h.logger.Infof("Terminal host stopped after %d ticks", h.sim.Ticks())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollInput blocks on terminal events until a quit key or an interrupt.
func pollInput(screen tcell.Screen, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			quit()
			return
		case *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				quit()
				return
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
