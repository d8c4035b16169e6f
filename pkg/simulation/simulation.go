package simulation

import (
	"context"
	"math/rand"
	"time"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
)

// State is the lifecycle state of a Simulation.
type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Renderer is the drawing surface a tick renders into.
// Clear is called once per tick, DrawBoid once per boid per tick.
type Renderer interface {
	Clear()
	DrawBoid(b *behavior.Boid)
}

// Presenter is implemented by renderers that buffer a frame: Present is
// called once the last boid of the tick has been drawn.
type Presenter interface {
	Present()
}

// Simulation owns one flock for the lifetime of a run and advances it one
// tick at a time. It is not safe for concurrent use: a single host loop
// drives it.
type Simulation struct {
	cfg    *Config
	bounds behavior.Bounds
	flock  []*behavior.Boid
	rng    *rand.Rand
	state  State
	ticks  uint64
	logger golog.Logger
	stats  *tickStats
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for lifecycle and telemetry messages.
func WithLogger(logger golog.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithRand replaces the random source used to spawn the flock.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// New creates an uninitialized simulation for cfg. Call Init to spawn the flock.
func New(cfg *Config, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		bounds: cfg.Bounds(),
		logger: golog.DiscardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	s.stats = newTickStats(s.logger)
	return s
}

// Init spawns cfg.NumBoids followers and one leader at random positions in
// the world, replacing any previous flock, and starts the run.
func (s *Simulation) Init() {
	flock := make([]*behavior.Boid, 0, s.cfg.NumBoids+1)
	for i := 0; i < s.cfg.NumBoids; i++ {
		flock = append(flock, behavior.New(s.rng, s.bounds, false))
	}
	flock = append(flock, behavior.New(s.rng, s.bounds, true))
	s.InitFlock(flock)
}

// InitFlock starts a run with the given flock. The simulation takes
// ownership of the slice and of the boids in it.
func (s *Simulation) InitFlock(flock []*behavior.Boid) {
	s.flock = flock
	s.ticks = 0
	s.state = Running
	s.logger.Infof("Flock initialized: %d boids in a %.0fx%.0f world", len(flock), s.bounds.Width, s.bounds.Height)
}

// Step advances the flock by one tick: every boid accumulates its steering
// forces against the flock as it stood at the tick start, then every boid
// moves. It does nothing before Init.
func (s *Simulation) Step() {
	if s.state != Running {
		return
	}
	for _, b := range s.flock {
		b.Flock(s.flock)
	}
	for _, b := range s.flock {
		b.Update(s.bounds)
	}
	s.ticks++
	s.stats.record(s)
}

// Render clears r and draws every boid.
func (s *Simulation) Render(r Renderer) {
	r.Clear()
	for _, b := range s.flock {
		r.DrawBoid(b)
	}
	if p, ok := r.(Presenter); ok {
		p.Present()
	}
}

// Tick is one full frame: Step then Render.
func (s *Simulation) Tick(r Renderer) {
	s.Step()
	s.Render(r)
}

// Run performs one Tick per value received from ticks until ticks is closed,
// which returns nil, or ctx is done, which returns ctx.Err().
func (s *Simulation) Run(ctx context.Context, ticks <-chan time.Time, r Renderer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			s.Tick(r)
		}
	}
}

// FixedTicks returns a closed channel holding n ticks, for driving Run a
// known number of times.
func FixedTicks(n int) <-chan time.Time {
	ch := make(chan time.Time, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		ch <- now
	}
	close(ch)
	return ch
}

// Flock returns the boids of the current run. Callers must not modify them.
func (s *Simulation) Flock() []*behavior.Boid { return s.flock }

func (s *Simulation) Bounds() behavior.Bounds { return s.bounds }

func (s *Simulation) State() State { return s.state }

// Ticks is the number of steps since the last Init.
func (s *Simulation) Ticks() uint64 { return s.ticks }

func (s *Simulation) Config() *Config { return s.cfg }
