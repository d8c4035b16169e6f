package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
)

// Screen is the part of tcell.Screen the terminal renderer draws on.
type Screen interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

var (
	LeaderStyle   = styleOf(LeaderColor)
	FollowerStyle = styleOf(FollowerColor)
)

// arrows is indexed by heading octant, clockwise from east. Screen y grows
// downward, so a positive angle points down.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Terminal draws the flock as one arrow per boid on a character grid,
// scaling the world to the current screen size.
type Terminal struct {
	screen Screen
	bounds behavior.Bounds
}

func NewTerminal(screen Screen, bounds behavior.Bounds) *Terminal {
	return &Terminal{screen: screen, bounds: bounds}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Present flushes the frame to the terminal.
func (t *Terminal) Present() {
	t.screen.Show()
}

// DrawBoid puts the arrow of b in the cell covering its position. Boids
// outside the world are not drawn.
func (t *Terminal) DrawBoid(b *behavior.Boid) {
	x, y, ok := t.Cell(b)
	if !ok {
		return
	}
	style := FollowerStyle
	if b.Leader {
		style = LeaderStyle
	}
	t.screen.SetContent(x, y, Arrow(b.Vel.Angle()), nil, style)
}

// Cell maps the position of b to a screen cell.
func (t *Terminal) Cell(b *behavior.Boid) (int, int, bool) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 || b.Pos.X < 0 || b.Pos.Y < 0 {
		return 0, 0, false
	}
	x := int(b.Pos.X / t.bounds.Width * float64(cols))
	y := int(b.Pos.Y / t.bounds.Height * float64(rows))
	if x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

// Arrow returns the arrow rune closest to angle (radians, atan2 convention).
func Arrow(angle float64) rune {
	i := int(math.Round(angle / (math.Pi / 4)))
	return arrows[((i%8)+8)%8]
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
