package renderer

import (
	"math"

	"github.com/mlvx/neonpendulum/components"
)

// BeamFan draws a symmetric fan of translucent triangular beams from the
// bob when its speed is high enough. All beams share one low alpha; the
// whole fan is meant to be flushed into a single offscreen layer and
// composited once, so overlaps do not darken unevenly.
type BeamFan struct {
	count      int
	length     float64
	halfSpread float64
	threshold  float64 // bob speed gate, pixels/tick
}

// NewBeamFan creates a fan of count beams of the given length, each
// spanning +/- halfSpread around its central direction.
func NewBeamFan(count int, length, halfSpread, threshold float64) *BeamFan {
	return &BeamFan{
		count:      count,
		length:     length,
		halfSpread: halfSpread,
		threshold:  threshold,
	}
}

// Append emits the fan centered on bob if speed exceeds the threshold.
// Below threshold nothing is emitted and Append reports false.
func (b *BeamFan) Append(dl *DrawList, bob components.Vec2, speed float64) bool {
	if speed <= b.threshold {
		return false
	}
	for i := 0; i < b.count; i++ {
		central := float64(i) * 2 * math.Pi / float64(b.count)
		a1 := central - b.halfSpread
		a2 := central + b.halfSpread
		p1 := components.Vec2{X: bob.X + b.length*math.Cos(a1), Y: bob.Y + b.length*math.Sin(a1)}
		p2 := components.Vec2{X: bob.X + b.length*math.Cos(a2), Y: bob.Y + b.length*math.Sin(a2)}
		// Screen coordinates have y down, so decreasing angle order
		// keeps the winding counter-clockwise.
		dl.Triangles = append(dl.Triangles, Triangle{A: bob, B: p2, C: p1, Color: beamWhite})
	}
	return true
}

// Threshold returns the gating speed.
func (b *BeamFan) Threshold() float64 {
	return b.threshold
}
