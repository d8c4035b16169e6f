package simulation

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// recorder is a Renderer that remembers what it was asked to draw.
type recorder struct {
	clears int
	drawn  []geometry.Vector2D
}

func (r *recorder) Clear() {
	r.clears++
	r.drawn = r.drawn[:0]
}

func (r *recorder) DrawBoid(b *behavior.Boid) {
	r.drawn = append(r.drawn, b.Pos)
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.WorldWidth = 2000
	cfg.WorldHeight = 2000
	cfg.NumBoids = 20
	cfg.Seed = 1
	return cfg
}

// spreadFlock returns 5 boids far from each other and from the edges, so no
// rule and no edge steering applies during the first tick.
func spreadFlock() []*behavior.Boid {
	flock := []*behavior.Boid{
		behavior.NewAt(geometry.NewVector(600, 600), geometry.NewVector(1, 0.5)),
		behavior.NewAt(geometry.NewVector(800, 600), geometry.NewVector(-2, 1)),
		behavior.NewAt(geometry.NewVector(1000, 600), geometry.NewVector(0.3, -0.7)),
		behavior.NewAt(geometry.NewVector(600, 900), geometry.NewVector(4, 3)),
		behavior.NewAt(geometry.NewVector(900, 1100), geometry.NewVector(-3, -4)),
	}
	flock[4].Leader = true
	return flock
}

func TestNew_Uninitialized(t *testing.T) {
	s := New(testConfig())
	if s.State() != Uninitialized {
		t.Fatalf("State = %s; want %s", s.State(), Uninitialized)
	}

	s.Step()

	if s.Ticks() != 0 || len(s.Flock()) != 0 {
		t.Errorf("Step before Init advanced: ticks %d flock %d", s.Ticks(), len(s.Flock()))
	}
}

func TestInit(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	s.Init()

	if s.State() != Running {
		t.Fatalf("State = %s; want %s", s.State(), Running)
	}
	flock := s.Flock()
	if len(flock) != cfg.NumBoids+1 {
		t.Fatalf("flock size = %d; want %d", len(flock), cfg.NumBoids+1)
	}

	leaders := 0
	for _, b := range flock {
		if b.Leader {
			leaders++
		}
		if b.Pos.X < 0 || b.Pos.X >= cfg.WorldWidth || b.Pos.Y < 0 || b.Pos.Y >= cfg.WorldHeight {
			t.Errorf("boid spawned outside the world at %s", b.Pos)
		}
	}
	if leaders != 1 {
		t.Errorf("leaders = %d; want 1", leaders)
	}
}

func TestInit_SameSeedSameFlock(t *testing.T) {
	a := New(testConfig())
	b := New(testConfig())
	a.Init()
	b.Init()

	for i := range a.Flock() {
		if a.Flock()[i].Pos != b.Flock()[i].Pos || a.Flock()[i].Vel != b.Flock()[i].Vel {
			t.Fatalf("boid %d differs between runs with the same seed", i)
		}
	}
}

func TestInit_ReplacesFlock(t *testing.T) {
	s := New(testConfig(), WithRand(rand.New(rand.NewSource(3))))
	s.Init()
	s.Step()
	old := s.Flock()

	s.Init()

	if s.Ticks() != 0 {
		t.Errorf("Ticks after re-Init = %d; want 0", s.Ticks())
	}
	if s.Flock()[0] == old[0] {
		t.Error("re-Init kept the previous flock")
	}
}

func TestRun_OneTick(t *testing.T) {
	s := New(testConfig())
	s.InitFlock(spreadFlock())

	before := make([]behavior.Boid, len(s.Flock()))
	for i, b := range s.Flock() {
		before[i] = *b
	}

	r := &recorder{}
	if err := s.Run(context.Background(), FixedTicks(1), r); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if s.Ticks() != 1 {
		t.Fatalf("Ticks = %d; want 1", s.Ticks())
	}
	for i, b := range s.Flock() {
		want := before[i].Pos.Add(before[i].Vel)
		if !b.Pos.Eq(want) {
			t.Errorf("boid %d Pos = %s; want %s", i, b.Pos, want)
		}
		if b.Vel.Len() > b.MaxSpeed+geometry.Epsilon {
			t.Errorf("boid %d speed = %v; want <= %v", i, b.Vel.Len(), b.MaxSpeed)
		}
		if b.Acc != geometry.Zero {
			t.Errorf("boid %d Acc = %s; want reset", i, b.Acc)
		}
	}

	if r.clears != 1 {
		t.Errorf("Clear called %d times; want 1", r.clears)
	}
	if len(r.drawn) != len(s.Flock()) {
		t.Fatalf("drew %d boids; want %d", len(r.drawn), len(s.Flock()))
	}
	for i, p := range r.drawn {
		if p != s.Flock()[i].Pos {
			t.Errorf("boid %d drawn at %s; want post-step position %s", i, p, s.Flock()[i].Pos)
		}
	}
}

func TestStep_RulesSeeTickStart(t *testing.T) {
	// Two close boids: if the first one moved before the second computed its
	// forces, the second would see a different neighbor.
	s := New(testConfig())
	s.InitFlock([]*behavior.Boid{
		behavior.NewAt(geometry.NewVector(1000, 1000), geometry.NewVector(3, 0)),
		behavior.NewAt(geometry.NewVector(1010, 1000), geometry.NewVector(0, 2)),
		behavior.NewAt(geometry.NewVector(1000, 1012), geometry.NewVector(-1, 1)),
	})

	// Expected result computed on an independent copy of the tick-start state.
	snapshot := make([]*behavior.Boid, len(s.Flock()))
	for i, b := range s.Flock() {
		c := *b
		snapshot[i] = &c
	}
	want := make([]geometry.Vector2D, len(snapshot))
	for i, b := range snapshot {
		acc := b.Separation(snapshot).Add(b.Alignment(snapshot)).Add(b.Cohesion(snapshot))
		want[i] = b.Vel.Add(acc).Limit(b.MaxSpeed)
	}

	s.Step()

	for i, b := range s.Flock() {
		if !b.Vel.Eq(want[i]) {
			t.Errorf("boid %d Vel = %s; want %s", i, b.Vel, want[i])
		}
	}
}

func TestStep_KeepsFlockSize(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	s.Init()

	r := &recorder{}
	for i := 0; i < 200; i++ {
		s.Tick(r)
		if len(s.Flock()) != cfg.NumBoids+1 {
			t.Fatalf("tick %d: flock size = %d; want %d", i, len(s.Flock()), cfg.NumBoids+1)
		}
		if len(r.drawn) != cfg.NumBoids+1 {
			t.Fatalf("tick %d: drew %d boids", i, len(r.drawn))
		}
	}
	if s.Ticks() != 200 {
		t.Errorf("Ticks = %d; want 200", s.Ticks())
	}
}

func TestRun_Cancelled(t *testing.T) {
	s := New(testConfig())
	s.Init()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, make(chan time.Time), &recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v; want %v", err, context.Canceled)
	}
	if s.Ticks() != 0 {
		t.Errorf("Ticks = %d; want 0", s.Ticks())
	}
}

func TestSnapshot(t *testing.T) {
	s := New(testConfig())
	if snap := s.Snapshot(); snap.Count != 0 || snap.MeanSpeed != 0 {
		t.Errorf("empty Snapshot = %+v", snap)
	}

	s.InitFlock(spreadFlock())
	snap := s.Snapshot()

	if snap.Count != 5 {
		t.Errorf("Count = %d; want 5", snap.Count)
	}
	if snap.Leader != geometry.NewVector(900, 1100) {
		t.Errorf("Leader = %s; want (900.00, 1100.00)", snap.Leader)
	}
	if snap.MaxSpeed != 5 {
		t.Errorf("MaxSpeed = %v; want 5", snap.MaxSpeed)
	}
}

func BenchmarkSimulation_Step(b *testing.B) {
	cfg := testConfig()
	cfg.NumBoids = 100
	s := New(cfg)
	s.Init()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Step()
	}
}
