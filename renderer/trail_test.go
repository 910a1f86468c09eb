package renderer

import (
	"testing"

	"github.com/mlvx/neonpendulum/components"
)

func trailPoints(n int) []components.Vec2 {
	pts := make([]components.Vec2, n)
	for i := range pts {
		pts[i] = components.Vec2{X: float64(i * 10), Y: float64(i * 5)}
	}
	return pts
}

func TestAppendTrailTooShort(t *testing.T) {
	var dl DrawList

	AppendTrail(&dl, nil)
	if !dl.Empty() {
		t.Error("empty history should emit nothing")
	}

	AppendTrail(&dl, trailPoints(1))
	if !dl.Empty() {
		t.Error("single-point history should emit nothing")
	}
}

func TestAppendTrailSegments(t *testing.T) {
	var dl DrawList
	pts := trailPoints(8)
	AppendTrail(&dl, pts)

	if len(dl.Lines) != 7 {
		t.Fatalf("emitted %d segments, want 7", len(dl.Lines))
	}

	for i, l := range dl.Lines {
		if l.From != pts[i] || l.To != pts[i+1] {
			t.Errorf("segment %d spans %+v -> %+v, want %+v -> %+v", i, l.From, l.To, pts[i], pts[i+1])
		}
	}
}

func TestAppendTrailGradientEndpoints(t *testing.T) {
	var dl DrawList
	AppendTrail(&dl, trailPoints(8))

	first := dl.Lines[0].Color
	if first.R != NeonPurple.R || first.G != NeonPurple.G || first.B != NeonPurple.B {
		t.Errorf("oldest segment = (%d, %d, %d), want purple", first.R, first.G, first.B)
	}

	last := dl.Lines[len(dl.Lines)-1].Color
	if last.R != NeonCyan.R || last.G != NeonCyan.G || last.B != NeonCyan.B {
		t.Errorf("newest segment = (%d, %d, %d), want cyan", last.R, last.G, last.B)
	}
}

func TestAppendTrailAlphaRamp(t *testing.T) {
	var dl DrawList
	AppendTrail(&dl, trailPoints(8))

	prev := dl.Lines[0].Color.A
	for i := 1; i < len(dl.Lines); i++ {
		a := dl.Lines[i].Color.A
		if a <= prev {
			t.Errorf("segment %d alpha = %d, not above previous %d", i, a, prev)
		}
		prev = a
	}
	// With 8 points the newest of the 7 segments carries 255*7/8.
	if got := dl.Lines[len(dl.Lines)-1].Color.A; got != 223 {
		t.Errorf("newest segment alpha = %d, want 223", got)
	}
}
