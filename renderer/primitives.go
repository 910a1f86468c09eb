// Package renderer builds drawable primitives for each visual effect and
// executes them against the raylib canvas. Effect builders are pure:
// they append primitives to a DrawList and never touch raylib, so every
// effect is testable without a window. Only Surface issues draw calls.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/components"
)

// Line is a stroked segment.
type Line struct {
	From, To components.Vec2
	Width    float32
	Color    rl.Color
}

// Triangle is a filled triangle. Vertices are counter-clockwise in
// screen coordinates (y down).
type Triangle struct {
	A, B, C components.Vec2
	Color   rl.Color
}

// Polygon is a filled convex polygon, rendered as a fan around the
// first vertex.
type Polygon struct {
	Vertices []components.Vec2
	Color    rl.Color
}

// Dot is a filled circle.
type Dot struct {
	Center components.Vec2
	Radius float32
	Color  rl.Color
}

// DrawList collects the primitives one effect emits for a frame.
// Lists are reused across frames; Reset keeps the backing arrays.
type DrawList struct {
	Lines     []Line
	Triangles []Triangle
	Polygons  []Polygon
	Dots      []Dot
}

// Reset clears the list for the next frame without freeing capacity.
func (d *DrawList) Reset() {
	d.Lines = d.Lines[:0]
	d.Triangles = d.Triangles[:0]
	d.Polygons = d.Polygons[:0]
	d.Dots = d.Dots[:0]
}

// Empty reports whether the list holds no primitives.
func (d *DrawList) Empty() bool {
	return len(d.Lines) == 0 && len(d.Triangles) == 0 &&
		len(d.Polygons) == 0 && len(d.Dots) == 0
}
