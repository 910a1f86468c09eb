// Grid warp preview tool - interactive visualization with sliders.
//
// The warp center follows the mouse; spacing and warp radius are
// adjustable live.
//
// Usage: go run ./cmd/gridpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/components"
	"github.com/mlvx/neonpendulum/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewWidth = 800
	panelX       = float32(previewWidth + 15)
	panelWidth   = windowWidth - previewWidth - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Grid Warp Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	spacing := float32(15)
	warpRadius := float32(150)

	grid := renderer.NewGrid(previewWidth, windowHeight, int(spacing), float64(warpRadius))
	var dl renderer.DrawList

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		center := components.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		dl.Reset()
		grid.Append(&dl, center)
		for _, d := range dl.Dots {
			rl.DrawCircleV(rl.Vector2{X: float32(d.Center.X), Y: float32(d.Center.Y)}, d.Radius, d.Color)
		}
		rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), warpRadius, rl.DarkGray)

		// Control panel
		panelY := float32(10)
		rl.DrawText("Grid Warp Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText("Spacing", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpacing := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 60), Height: 20},
			"5", "40",
			spacing, 5, 40,
		)
		rl.DrawText(fmt.Sprintf("%d", int(spacing)), int32(panelX+float32(panelWidth-50)), int32(panelY+2), 16, rl.RayWhite)
		panelY += 35

		rl.DrawText("Warp radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 60), Height: 20},
			"30", "300",
			warpRadius, 30, 300,
		)
		rl.DrawText(fmt.Sprintf("%d", int(warpRadius)), int32(panelX+float32(panelWidth-50)), int32(panelY+2), 16, rl.RayWhite)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
			newSpacing, newRadius = 15, 150
		}

		if int(newSpacing) != int(spacing) || newRadius != warpRadius {
			spacing = newSpacing
			warpRadius = newRadius
			grid = renderer.NewGrid(previewWidth, windowHeight, int(spacing), float64(warpRadius))
		}

		rl.EndDrawing()
	}
}
