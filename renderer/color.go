package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// Scene palette.
var (
	NeonCyan   = rl.Color{R: 0, G: 255, B: 255, A: 255}
	NeonPurple = rl.Color{R: 128, G: 0, B: 128, A: 255}
	gridGray   = rl.Color{R: 50, G: 50, B: 50, A: 150}
	beamWhite  = rl.Color{R: 255, G: 255, B: 255, A: 80}
)

// LerpColor blends the RGB channels of c1 and c2 linearly: t=0 yields
// c1, t=1 yields c2. Alpha is returned opaque; callers set it separately.
func LerpColor(c1, c2 rl.Color, t float64) rl.Color {
	return rl.Color{
		R: uint8(float64(c1.R)*(1-t) + float64(c2.R)*t),
		G: uint8(float64(c1.G)*(1-t) + float64(c2.G)*t),
		B: uint8(float64(c1.B)*(1-t) + float64(c2.B)*t),
		A: 255,
	}
}
