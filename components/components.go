// Package components defines the small value types shared across systems.
package components

import "math"

// Vec2 is a point or vector in canvas coordinates (origin top-left,
// y increasing downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Orbit is the ECS component for one vortex particle: a fixed-radius
// circular orbit around the vortex center. Radius is set once at seed
// time and never changes; only Angle advances.
type Orbit struct {
	Angle  float64 // radians
	Radius float64 // pixels
}
