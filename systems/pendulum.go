// Package systems holds the per-tick simulation state: the pendulum
// integrator, the trail history, and the vortex particle population.
package systems

import (
	"math"

	"github.com/mlvx/neonpendulum/components"
)

// Pendulum is a damped simple pendulum integrated one step per tick.
// Angle is measured from vertical; positive angles swing toward +x.
type Pendulum struct {
	Angle               float64 // radians
	AngularVelocity     float64 // radians/tick
	AngularAcceleration float64 // radians/tick^2, recomputed each Step

	anchor  components.Vec2
	length  float64
	gravity float64
	damping float64
}

// NewPendulum creates a pendulum at rest at the given initial angle.
func NewPendulum(anchor components.Vec2, length, gravity, damping, initialAngle float64) *Pendulum {
	return &Pendulum{
		Angle:   initialAngle,
		anchor:  anchor,
		length:  length,
		gravity: gravity,
		damping: damping,
	}
}

// Step advances the state one tick: acceleration from the torque model,
// then damped velocity, then angle. The order matters; damping applies
// after the new acceleration has been accumulated so both intrinsic and
// freshly added velocity decay uniformly.
func (p *Pendulum) Step() {
	p.AngularAcceleration = -(p.gravity / p.length) * math.Sin(p.Angle)
	p.AngularVelocity = (p.AngularVelocity + p.AngularAcceleration) * p.damping
	p.Angle += p.AngularVelocity
}

// Bob returns the current bob position in canvas coordinates.
func (p *Pendulum) Bob() components.Vec2 {
	return components.Vec2{
		X: p.anchor.X + p.length*math.Sin(p.Angle),
		Y: p.anchor.Y + p.length*math.Cos(p.Angle),
	}
}

// LinearSpeed returns the bob's speed in pixels/tick. Used only to gate
// the light beams.
func (p *Pendulum) LinearSpeed() float64 {
	return math.Abs(p.AngularVelocity) * p.length
}

// Anchor returns the fixed suspension point.
func (p *Pendulum) Anchor() components.Vec2 {
	return p.anchor
}

// Length returns the arm length in pixels.
func (p *Pendulum) Length() float64 {
	return p.length
}
