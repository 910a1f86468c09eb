package systems

import "github.com/mlvx/neonpendulum/components"

// Trail keeps the most recent bob positions, oldest first. Once capacity
// is reached it behaves as a sliding window: each Push evicts the oldest
// point.
type Trail struct {
	points   []components.Vec2
	capacity int
}

// NewTrail creates an empty trail holding at most capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		points:   make([]components.Vec2, 0, capacity),
		capacity: capacity,
	}
}

// Push appends the latest bob position, evicting the oldest point when
// the trail is full.
func (t *Trail) Push(p components.Vec2) {
	if len(t.points) == t.capacity {
		copy(t.points, t.points[1:])
		t.points[len(t.points)-1] = p
		return
	}
	t.points = append(t.points, p)
}

// Points returns the history oldest-first. The slice is owned by the
// trail; callers must not retain it across Push calls.
func (t *Trail) Points() []components.Vec2 {
	return t.points
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return len(t.points)
}
