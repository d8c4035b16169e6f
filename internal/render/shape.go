// Package render holds the drawing surfaces of the flock that do not need a
// graphics context: the shared boid shape and palette, and the terminal
// renderer.
package render

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Boid arrow size, in world units.
const (
	BodyLength = 15.0
	HalfWidth  = 5.0
)

var (
	LeaderColor   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff} // #ff0000
	FollowerColor = color.RGBA{R: 0x55, G: 0x8c, B: 0xf4, A: 0xff} // #558cf4
)

// ColorOf returns the fill color of b.
func ColorOf(b *behavior.Boid) color.RGBA {
	if b.Leader {
		return LeaderColor
	}
	return FollowerColor
}

// Triangle returns the corners of the arrow drawn for b, in world
// coordinates: the tip sits on the boid position and the two back corners
// trail BodyLength behind it, HalfWidth to each side, rotated to the
// heading of the velocity.
func Triangle(b *behavior.Boid) [3]geometry.Vector2D {
	angle := b.Vel.Angle()
	return [3]geometry.Vector2D{
		b.Pos,
		geometry.NewVector(-BodyLength, HalfWidth).Rotate(angle).Add(b.Pos),
		geometry.NewVector(-BodyLength, -HalfWidth).Rotate(angle).Add(b.Pos),
	}
}
