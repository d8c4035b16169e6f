package behavior

import (
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Rule and motion constants. They are fixed for a run: the flock does not
// expose runtime tuning.
const (
	DefaultMaxSpeed = 5.0
	DefaultMaxForce = 0.005
	DefaultRadius   = 5.0

	SeparationRadius = 25.0
	AlignmentRadius  = 50.0
	CohesionRadius   = 15.0
	SeparationWeight = 1.5

	Margin     = 200.0
	TurnFactor = 0.1
)

// Bounds is the size of the world the flock lives in, in pixels.
// The origin is the top-left corner.
type Bounds struct {
	Width, Height float64
}

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
// Fields are exported so renderers can read them.
type Boid struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	// Acc accumulates the steering forces of the current tick.
	Acc geometry.Vector2D

	MaxSpeed float64
	MaxForce float64
	Radius   float64

	// Leader only changes how the boid is drawn.
	Leader bool
}

// New creates a boid with random position inside bounds and a random
// velocity in [-1, 1) on each axis.
func New(rng *rand.Rand, bounds Bounds, leader bool) *Boid {
	b := NewAt(
		geometry.NewVector(rng.Float64()*bounds.Width, rng.Float64()*bounds.Height),
		geometry.NewVector(rng.Float64()*2-1, rng.Float64()*2-1),
	)
	b.Leader = leader
	return b
}

// NewAt creates a follower at pos moving with vel, using the default limits.
func NewAt(pos, vel geometry.Vector2D) *Boid {
	return &Boid{
		Pos:      pos,
		Vel:      vel,
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
		Radius:   DefaultRadius,
	}
}

// ApplyForce adds force to the acceleration accumulator.
func (b *Boid) ApplyForce(force geometry.Vector2D) {
	b.Acc = b.Acc.Add(force)
}

// Flock evaluates separation, alignment and cohesion against the flock,
// in that order, and accumulates them into Acc. It only writes b.Acc, so
// every boid of a tick sees the positions and velocities of the tick start.
func (b *Boid) Flock(flock []*Boid) {
	b.ApplyForce(b.Separation(flock))
	b.ApplyForce(b.Alignment(flock))
	b.ApplyForce(b.Cohesion(flock))
}

// Update integrates one tick of motion and then steers away from the edges.
// Order matters: the speed clamp comes after the position step, and the edge
// nudge after the clamp.
func (b *Boid) Update(bounds Bounds) {
	b.Vel = b.Vel.Add(b.Acc)
	b.Pos = b.Pos.Add(b.Vel)
	b.Vel = b.Vel.Limit(b.MaxSpeed)
	b.Acc = geometry.Zero
	b.steerFromEdges(bounds)
}

// steerFromEdges is the soft turn: inside the margin the velocity is nudged
// back toward the interior, one axis at a time.
func (b *Boid) steerFromEdges(bounds Bounds) {
	if b.Pos.X < Margin {
		b.Vel.X += TurnFactor
	}
	if b.Pos.X > bounds.Width-Margin {
		b.Vel.X -= TurnFactor
	}
	if b.Pos.Y < Margin {
		b.Vel.Y += TurnFactor
	}
	if b.Pos.Y > bounds.Height-Margin {
		b.Vel.Y -= TurnFactor
	}
}
