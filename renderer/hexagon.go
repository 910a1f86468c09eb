package renderer

import (
	"math"

	"github.com/mlvx/neonpendulum/components"
)

// Hexagon is the spinning marker drawn at the pendulum bob. The six
// local-frame vertices are computed once; only the rotation accumulates,
// at a constant rate independent of the pendulum.
type Hexagon struct {
	local    [6]components.Vec2
	rotation float64
	step     float64 // radians added per tick
	verts    []components.Vec2
}

// NewHexagon precomputes a regular hexagon of the given side length
// (side equals circumradius) centered on the origin.
func NewHexagon(side, rotationStep float64) *Hexagon {
	h := &Hexagon{
		step:  rotationStep,
		verts: make([]components.Vec2, 6),
	}
	for i := range h.local {
		theta := float64(i) * 60 * math.Pi / 180
		h.local[i] = components.Vec2{
			X: side * math.Cos(theta),
			Y: side * math.Sin(theta),
		}
	}
	return h
}

// Rotate advances the spin one tick. The accumulated angle grows
// unbounded; values beyond 2*pi are equivalent under rotation, so
// nothing wraps it.
func (h *Hexagon) Rotate() {
	h.rotation += h.step
}

// Rotation returns the accumulated spin angle.
func (h *Hexagon) Rotation() float64 {
	return h.rotation
}

// Append emits the pendulum rod from anchor to bob and the rotated,
// filled hexagon centered on the bob.
func (h *Hexagon) Append(dl *DrawList, anchor, bob components.Vec2) {
	dl.Lines = append(dl.Lines, Line{From: anchor, To: bob, Width: 2, Color: NeonCyan})

	sin, cos := math.Sincos(h.rotation)
	for i, v := range h.local {
		h.verts[i] = components.Vec2{
			X: bob.X + v.X*cos - v.Y*sin,
			Y: bob.Y + v.X*sin + v.Y*cos,
		}
	}
	dl.Polygons = append(dl.Polygons, Polygon{Vertices: h.verts, Color: NeonCyan})
}
