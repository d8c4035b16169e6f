package game

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flocking-boids/internal/render"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
)

var (
	whiteImage     *ebiten.Image
	whiteImageOnce sync.Once

	// Background is the color a frame is cleared to.
	Background = color.RGBA{R: 10, G: 10, B: 30, A: 255}

	separationRing = color.RGBA{R: 255, G: 120, B: 120, A: 90}
	alignmentRing  = color.RGBA{R: 120, G: 160, B: 255, A: 60}
)

// Renderer draws boids as filled triangles on an ebiten image.
// Screen is swapped in by the game for every frame.
type Renderer struct {
	Screen *ebiten.Image
}

func NewRenderer() *Renderer {
	whiteImageOnce.Do(func() {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	})
	return &Renderer{}
}

func (r *Renderer) Clear() {
	r.Screen.Fill(Background)
}

// DrawBoid fills the boid arrow, tinted with the leader or follower color.
func (r *Renderer) DrawBoid(b *behavior.Boid) {
	indices := []uint16{0, 1, 2}
	op := &ebiten.DrawTrianglesOptions{}
	r.Screen.DrawTriangles(triangleVertices(b), indices, whiteImage, op)
}

// DrawRadii strokes the separation and alignment neighborhoods of b.
func (r *Renderer) DrawRadii(b *behavior.Boid) {
	x, y := float32(b.Pos.X), float32(b.Pos.Y)
	vector.StrokeCircle(r.Screen, x, y, behavior.SeparationRadius, 1, separationRing, true)
	vector.StrokeCircle(r.Screen, x, y, behavior.AlignmentRadius, 1, alignmentRing, true)
}

// triangleVertices maps the boid arrow to ebiten vertices sampling the
// middle of the white image, so the vertex color is the fill color.
func triangleVertices(b *behavior.Boid) []ebiten.Vertex {
	c := render.ColorOf(b)
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	corners := render.Triangle(b)
	vertices := make([]ebiten.Vertex, 0, len(corners))
	for _, p := range corners {
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p.X),
			DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	return vertices
}
