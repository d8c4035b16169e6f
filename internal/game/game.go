package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/ui"
)

// Game hosts a Simulation in an ebiten window. Ebiten's loop is the frame
// scheduler: every Update advances the flock by one step and every Draw
// renders it.
type Game struct {
	sim      *simulation.Simulation
	renderer *Renderer
	logger   golog.Logger

	// UI Controls
	panel     *ui.Panel
	showStats *ui.Checkbox
	showRadii *ui.Checkbox

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

var _ ebiten.Game = (*Game)(nil)

// New wraps sim, which must already be initialized, in an ebiten game.
func New(sim *simulation.Simulation, logger golog.Logger) *Game {
	cfg := sim.Config()
	panel := ui.NewPanel(10, 10, 190, "Display")
	g := &Game{
		sim:       sim,
		renderer:  NewRenderer(),
		logger:    logger,
		panel:     panel,
		showStats: panel.AddCheckbox("Show Stats", cfg.ShowStats),
		showRadii: panel.AddCheckbox("Show Radii", cfg.ShowRadii),
	}
	logger.Infof("Window host ready: %d boids, %d TPS", len(sim.Flock()), cfg.TicksPerSecond)
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()
	g.sim.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	g.renderer.Screen = screen
	g.sim.Render(g.renderer)

	if g.showRadii.Value {
		for _, b := range g.sim.Flock() {
			g.renderer.DrawRadii(b)
		}
	}

	g.panel.Draw(screen)

	if g.showStats.Value {
		g.drawStats(screen)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nTick:   %d\nBoids:  %d\nSpeed:  %.2f avg %.2f max\nLeader: %s\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		snap.Tick,
		snap.Count,
		snap.MeanSpeed,
		snap.MaxSpeed,
		snap.Leader,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-220, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	bounds := g.sim.Bounds()
	return int(bounds.Width), int(bounds.Height)
}
