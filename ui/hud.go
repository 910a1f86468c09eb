// Package ui draws the optional debug overlay.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values the overlay displays.
type HUDData struct {
	Tick      int32
	FPS       int32
	Elapsed   float64
	TimeLimit float64
	Speed     float64
	BeamsOn   bool
}

// HUD renders the debug heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner, above all effects.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("Pendulum Animation", 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Bob speed: %.2f px/tick", data.Tick, data.FPS, data.Speed),
		10, 35, 16, rl.LightGray,
	)

	status := "beams off"
	statusColor := rl.Gray
	if data.BeamsOn {
		status = "BEAMS ON"
		statusColor = rl.Yellow
	}
	rl.DrawText(status, 10, 55, 16, statusColor)

	// Progress toward the run's time limit
	gui.ProgressBar(
		rl.Rectangle{X: 10, Y: 78, Width: 200, Height: 14},
		"", fmt.Sprintf("%.1f / %.0fs", data.Elapsed, data.TimeLimit),
		float32(data.Elapsed), 0, float32(data.TimeLimit),
	)
}
