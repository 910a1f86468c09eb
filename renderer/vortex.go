package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/components"
)

// AppendVortex emits one small white dot per particle position.
func AppendVortex(dl *DrawList, positions []components.Vec2) {
	for _, p := range positions {
		dl.Dots = append(dl.Dots, Dot{Center: p, Radius: 1, Color: rl.White})
	}
}
