package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/renderer"
	"github.com/mlvx/neonpendulum/telemetry"
	"github.com/mlvx/neonpendulum/ui"
)

// Draw renders one frame in the fixed order: rod and hexagon, trail,
// beams (gated), warped grid, vortex. Trail and beams go through the
// offscreen layer so their translucent primitives composite in one
// blend. Finishes the tick's telemetry and checks termination.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.perf.StartPhase(telemetry.PhaseHexagon)
	g.sceneList.Reset()
	g.state.Hexagon.Append(&g.sceneList, g.state.Pendulum.Anchor(), g.bob)
	g.surface.Flush(&g.sceneList)

	g.perf.StartPhase(telemetry.PhaseTrail)
	g.trailList.Reset()
	renderer.AppendTrail(&g.trailList, g.state.Trail.Points())
	if !g.trailList.Empty() {
		g.surface.FlushLayer(&g.trailList)
	}

	g.perf.StartPhase(telemetry.PhaseBeams)
	g.beamList.Reset()
	g.beamsOn = g.beams.Append(&g.beamList, g.bob, g.speed)
	if g.beamsOn {
		g.surface.FlushLayer(&g.beamList)
	}

	g.perf.StartPhase(telemetry.PhaseGrid)
	g.gridList.Reset()
	g.grid.Append(&g.gridList, g.bob)
	g.surface.Flush(&g.gridList)

	g.perf.StartPhase(telemetry.PhaseVortex)
	g.vortexList.Reset()
	g.vortexPos = g.state.Vortex.Positions(g.vortexPos[:0])
	renderer.AppendVortex(&g.vortexList, g.vortexPos)
	g.surface.Flush(&g.vortexList)

	if g.hud != nil {
		g.hud.Draw(ui.HUDData{
			Tick:      g.tick,
			FPS:       rl.GetFPS(),
			Elapsed:   g.Elapsed(),
			TimeLimit: g.cfg.Run.TimeLimitSec,
			Speed:     g.speed,
			BeamsOn:   g.beamsOn,
		})
	}

	g.perf.StartPhase(telemetry.PhasePresent)
	rl.EndDrawing()

	g.perf.EndTick()
	g.recordTelemetry()
	g.checkTermination()
}
