package renderer

import (
	"math"
	"testing"

	"github.com/mlvx/neonpendulum/components"
)

func TestHexagonGeometry(t *testing.T) {
	h := NewHexagon(20, 3*math.Pi/180)
	anchor := components.Vec2{X: 400, Y: 100}
	bob := components.Vec2{X: 450, Y: 240}

	var dl DrawList
	h.Append(&dl, anchor, bob)

	if len(dl.Lines) != 1 {
		t.Fatalf("emitted %d lines, want the rod", len(dl.Lines))
	}
	rod := dl.Lines[0]
	if rod.From != anchor || rod.To != bob {
		t.Errorf("rod spans %+v -> %+v, want anchor -> bob", rod.From, rod.To)
	}

	if len(dl.Polygons) != 1 {
		t.Fatalf("emitted %d polygons, want 1", len(dl.Polygons))
	}
	verts := dl.Polygons[0].Vertices
	if len(verts) != 6 {
		t.Fatalf("hexagon has %d vertices, want 6", len(verts))
	}

	// Regular hexagon: every vertex sits at the side length from the bob.
	for i, v := range verts {
		d := v.Sub(bob).Len()
		if math.Abs(d-20) > 1e-9 {
			t.Errorf("vertex %d at distance %v from bob, want 20", i, d)
		}
	}
}

func TestHexagonRotationAccumulates(t *testing.T) {
	step := 3 * math.Pi / 180
	h := NewHexagon(20, step)

	// 200 ticks exceed a full turn; the angle keeps growing unwrapped.
	for i := 0; i < 200; i++ {
		h.Rotate()
	}
	want := 200 * step
	if math.Abs(h.Rotation()-want) > 1e-9 {
		t.Errorf("rotation = %v, want %v", h.Rotation(), want)
	}
	if h.Rotation() < 2*math.Pi {
		t.Error("rotation should accumulate past a full turn without wrapping")
	}
}

func TestHexagonRotatedVertex(t *testing.T) {
	// A quarter turn moves the vertex that started at angle 0 to angle
	// pi/2 relative to the bob.
	h := NewHexagon(20, math.Pi/2)
	h.Rotate()

	bob := components.Vec2{X: 100, Y: 100}
	var dl DrawList
	h.Append(&dl, bob, bob)

	v0 := dl.Polygons[0].Vertices[0]
	if math.Abs(v0.X-100) > 1e-9 || math.Abs(v0.Y-120) > 1e-9 {
		t.Errorf("rotated vertex 0 = %+v, want (100, 120)", v0)
	}
}
