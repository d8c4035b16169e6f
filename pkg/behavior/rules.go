package behavior

import "github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"

// Separation steers away from boids closer than SeparationRadius. Each close
// neighbor pushes along the unit vector from it to b, weighted by the inverse
// of the distance, so the nearest ones dominate.
func (b *Boid) Separation(flock []*Boid) geometry.Vector2D {
	steer := geometry.Zero
	count := 0
	for _, other := range flock {
		if other == b {
			continue
		}
		d := b.Pos.DistanceTo(other.Pos)
		if d >= SeparationRadius {
			continue
		}
		diff := b.Pos.Sub(other.Pos).Normalize().DivScalar(d)
		steer = steer.Add(diff)
		count++
	}
	if count > 0 {
		steer = steer.DivScalar(float64(count))
	}
	if steer.Len() == 0 {
		return geometry.Zero
	}
	return steer.Normalize().Limit(b.MaxForce).Scale(SeparationWeight)
}

// Alignment steers toward the average velocity of the boids within
// AlignmentRadius.
func (b *Boid) Alignment(flock []*Boid) geometry.Vector2D {
	avg, ok := b.averageVelocity(flock, AlignmentRadius)
	if !ok {
		return geometry.Zero
	}
	return avg.Limit(b.MaxForce)
}

// Cohesion steers using the average velocity of the boids within
// CohesionRadius as the reference point, minus the own position.
// The reference is a velocity average, not the neighbors' centroid.
func (b *Boid) Cohesion(flock []*Boid) geometry.Vector2D {
	avg, ok := b.averageVelocity(flock, CohesionRadius)
	if !ok {
		return geometry.Zero
	}
	return avg.Sub(b.Pos).Limit(b.MaxForce)
}

// averageVelocity returns the mean velocity of the other boids closer than
// radius, and false when there are none.
func (b *Boid) averageVelocity(flock []*Boid, radius float64) (geometry.Vector2D, bool) {
	sum := geometry.Zero
	count := 0
	for _, other := range flock {
		if other == b {
			continue
		}
		if b.Pos.DistanceTo(other.Pos) < radius {
			sum = sum.Add(other.Vel)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero, false
	}
	return sum.DivScalar(float64(count)), true
}
