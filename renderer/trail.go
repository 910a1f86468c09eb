package renderer

import "github.com/mlvx/neonpendulum/components"

// AppendTrail emits the neon trail polyline through points (oldest
// first). Each segment blends from NeonPurple at the oldest end to
// NeonCyan at the newest, with alpha rising with recency so the newest
// segment is most opaque. Fewer than two points emit nothing; that is
// the normal startup transient, not an error.
func AppendTrail(dl *DrawList, points []components.Vec2) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		c := LerpColor(NeonPurple, NeonCyan, t)
		c.A = uint8(255 * (i + 1) / n)
		dl.Lines = append(dl.Lines, Line{
			From:  points[i],
			To:    points[i+1],
			Width: 3,
			Color: c,
		})
	}
}
