package renderer

import (
	"math"

	"github.com/mlvx/neonpendulum/components"
)

// Grid draws a fixed-spacing dot lattice over the whole canvas, snapping
// points near the bob onto concentric rings. The unwarped lattice never
// changes, so its coordinates are computed once; only the warp decision
// and remap run per frame. This is the dominant per-frame cost.
type Grid struct {
	lattice    []components.Vec2
	spacing    float64
	warpRadius float64
}

// NewGrid caches the lattice covering a width x height canvas at the
// given spacing.
func NewGrid(width, height, spacing int, warpRadius float64) *Grid {
	g := &Grid{
		spacing:    float64(spacing),
		warpRadius: warpRadius,
	}
	for x := 0; x < width; x += spacing {
		for y := 0; y < height; y += spacing {
			g.lattice = append(g.lattice, components.Vec2{X: float64(x), Y: float64(y)})
		}
	}
	return g
}

// Append emits one dot per lattice point. Points within the warp radius
// of the bob move to the nearest concentric ring (radius quantized to
// the grid spacing) and draw slightly larger; all others draw in place
// at native size. A point exactly at the bob has no defined angle and
// falls through to the unwarped branch, drawing at its raw coordinate.
func (g *Grid) Append(dl *DrawList, bob components.Vec2) {
	for _, p := range g.lattice {
		dx := p.X - bob.X
		dy := p.Y - bob.Y
		r := math.Hypot(dx, dy)
		if r < g.warpRadius && r != 0 {
			theta := math.Atan2(dy, dx)
			rr := math.Round(r/g.spacing) * g.spacing
			dl.Dots = append(dl.Dots, Dot{
				Center: components.Vec2{
					X: bob.X + rr*math.Cos(theta),
					Y: bob.Y + rr*math.Sin(theta),
				},
				Radius: 2,
				Color:  gridGray,
			})
		} else {
			dl.Dots = append(dl.Dots, Dot{Center: p, Radius: 1, Color: gridGray})
		}
	}
}

// LatticeSize returns the number of cached lattice points.
func (g *Grid) LatticeSize() int {
	return len(g.lattice)
}
