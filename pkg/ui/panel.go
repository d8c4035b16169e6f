package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelTitleHeight = 25.0
	rowHeight        = 22.0
	panelPadding     = 10.0
)

// Panel stacks display toggles in a small box over the simulation.
type Panel struct {
	X, Y   float64
	Width  float64
	Title  string
	Boxes  []*Checkbox
	Hidden bool

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel with its top-left corner at x, y
func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddCheckbox appends a checkbox below the previous one and returns it
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	y := p.Y + panelTitleHeight + float64(len(p.Boxes))*rowHeight
	box := NewCheckbox(p.X+panelPadding, y, label, value)
	p.Boxes = append(p.Boxes, box)
	return box
}

// Height is the height of the panel with all its rows
func (p *Panel) Height() float64 {
	return panelTitleHeight + float64(len(p.Boxes))*rowHeight + panelPadding/2
}

// Update handles input for all checkboxes
func (p *Panel) Update() {
	if p.Hidden {
		return
	}
	for _, box := range p.Boxes {
		box.Update()
	}
}

// Draw renders the panel and all checkboxes
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+5))

	for _, box := range p.Boxes {
		box.Draw(screen)
	}
}
