package systems

import (
	"testing"

	"github.com/mlvx/neonpendulum/components"
)

func TestTrailGrowsToCapacity(t *testing.T) {
	tr := NewTrail(8)
	if tr.Len() != 0 {
		t.Fatalf("new trail length = %d, want 0", tr.Len())
	}

	for i := 0; i < 5; i++ {
		tr.Push(components.Vec2{X: float64(i)})
		if tr.Len() != i+1 {
			t.Errorf("after %d pushes length = %d, want %d", i+1, tr.Len(), i+1)
		}
	}
}

func TestTrailSlidingWindow(t *testing.T) {
	const capacity = 8
	tr := NewTrail(capacity)

	// Push well past capacity
	for i := 0; i < 30; i++ {
		tr.Push(components.Vec2{X: float64(i)})
	}

	if tr.Len() != capacity {
		t.Fatalf("length = %d, want %d", tr.Len(), capacity)
	}

	// Contents must be the last 8 positions, oldest first
	pts := tr.Points()
	for i, p := range pts {
		want := float64(30 - capacity + i)
		if p.X != want {
			t.Errorf("points[%d].X = %v, want %v", i, p.X, want)
		}
	}
}

func TestTrailCapacityOne(t *testing.T) {
	tr := NewTrail(1)
	tr.Push(components.Vec2{X: 1})
	tr.Push(components.Vec2{X: 2})
	if tr.Len() != 1 || tr.Points()[0].X != 2 {
		t.Errorf("capacity-1 trail = %+v, want just the newest point", tr.Points())
	}
}
