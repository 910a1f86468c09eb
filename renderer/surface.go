package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/components"
)

// Surface executes draw lists against the raylib canvas. It owns one
// offscreen render texture used by the translucent effects: a list
// flushed through the layer blends internally without alpha, then the
// whole layer composites onto the canvas in a single blend.
type Surface struct {
	layer         rl.RenderTexture2D
	width, height int32
}

// NewSurface creates a surface with an offscreen layer matching the
// canvas size. Requires an initialized raylib window.
func NewSurface(width, height int32) *Surface {
	return &Surface{
		layer:  rl.LoadRenderTexture(width, height),
		width:  width,
		height: height,
	}
}

// Unload releases the offscreen layer.
func (s *Surface) Unload() {
	rl.UnloadRenderTexture(s.layer)
}

// Flush draws a list directly onto the current render target in
// primitive order: lines, triangles, polygons, dots.
func (s *Surface) Flush(dl *DrawList) {
	for _, l := range dl.Lines {
		rl.DrawLineEx(vec2(l.From), vec2(l.To), l.Width, l.Color)
	}
	for _, t := range dl.Triangles {
		rl.DrawTriangle(vec2(t.A), vec2(t.B), vec2(t.C), t.Color)
	}
	for _, p := range dl.Polygons {
		// Fan around the first vertex; reversed order keeps the
		// winding counter-clockwise with y pointing down.
		for i := 1; i+1 < len(p.Vertices); i++ {
			rl.DrawTriangle(vec2(p.Vertices[0]), vec2(p.Vertices[i+1]), vec2(p.Vertices[i]), p.Color)
		}
	}
	for _, d := range dl.Dots {
		rl.DrawCircleV(vec2(d.Center), d.Radius, d.Color)
	}
}

// FlushLayer renders the list into a cleared offscreen layer and
// composites the layer once onto the canvas, so overlapping translucent
// primitives accumulate through a single blend instead of stacking.
func (s *Surface) FlushLayer(dl *DrawList) {
	rl.BeginTextureMode(s.layer)
	rl.ClearBackground(rl.Blank)
	s.Flush(dl)
	rl.EndTextureMode()

	// Render textures are y-flipped; a negative source height corrects it.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(s.width), Height: -float32(s.height)}
	rl.DrawTextureRec(s.layer.Texture, src, rl.Vector2{}, rl.White)
}

func vec2(v components.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
