package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/mlvx/neonpendulum/components"
)

// Vortex is a fixed population of particles orbiting a fixed center,
// each on its own constant-radius orbit. Every tick each particle's
// angle decreases by the same step (clockwise swirl); nothing else in
// the scene feeds into it.
type Vortex struct {
	world  *ecs.World
	mapper *ecs.Map1[components.Orbit]
	filter *ecs.Filter1[components.Orbit]

	center components.Vec2
	step   float64 // radians removed per tick
	count  int
}

// NewVortex seeds count particles with angle uniform in [0, 2*pi) and
// radius uniform in [radiusMin, radiusMax].
func NewVortex(rng *rand.Rand, center components.Vec2, count int, rotationStep, radiusMin, radiusMax float64) *Vortex {
	world := ecs.NewWorld()

	v := &Vortex{
		world:  world,
		mapper: ecs.NewMap1[components.Orbit](world),
		filter: ecs.NewFilter1[components.Orbit](world),
		center: center,
		step:   rotationStep,
		count:  count,
	}

	for i := 0; i < count; i++ {
		orbit := components.Orbit{
			Angle:  rng.Float64() * 2 * math.Pi,
			Radius: radiusMin + rng.Float64()*(radiusMax-radiusMin),
		}
		v.mapper.NewEntity(&orbit)
	}

	return v
}

// Update advances every particle one tick of clockwise rotation.
func (v *Vortex) Update() {
	query := v.filter.Query()
	for query.Next() {
		orbit := query.Get()
		orbit.Angle -= v.step
	}
}

// Positions appends the current particle positions to dst and returns it.
// Passing a reused slice avoids a per-frame allocation.
func (v *Vortex) Positions(dst []components.Vec2) []components.Vec2 {
	query := v.filter.Query()
	for query.Next() {
		orbit := query.Get()
		dst = append(dst, components.Vec2{
			X: v.center.X + orbit.Radius*math.Cos(orbit.Angle),
			Y: v.center.Y + orbit.Radius*math.Sin(orbit.Angle),
		})
	}
	return dst
}

// Orbits appends a snapshot of the raw orbit components to dst and
// returns it. Ordering is stable across calls as long as no entities
// are created or removed.
func (v *Vortex) Orbits(dst []components.Orbit) []components.Orbit {
	query := v.filter.Query()
	for query.Next() {
		dst = append(dst, *query.Get())
	}
	return dst
}

// Count returns the fixed population size.
func (v *Vortex) Count() int {
	return v.count
}

// Center returns the fixed orbit center.
func (v *Vortex) Center() components.Vec2 {
	return v.center
}
