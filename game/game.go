// Package game runs the frame pipeline: one Update and one Draw per
// tick, in a fixed component order, until the run's time limit or the
// window close request ends it.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlvx/neonpendulum/components"
	"github.com/mlvx/neonpendulum/config"
	"github.com/mlvx/neonpendulum/renderer"
	"github.com/mlvx/neonpendulum/systems"
	"github.com/mlvx/neonpendulum/telemetry"
	"github.com/mlvx/neonpendulum/ui"
)

// Options configures a run.
type Options struct {
	Seed      int64
	Headless  bool
	MaxTicks  int // stop after N ticks (0 = unlimited)
	LogStats  bool
	OutputDir string
	ShowHUD   bool
}

// AnimationState aggregates all cross-frame mutable state. Exactly one
// mutator, the Game's tick, touches it; everything else reads.
type AnimationState struct {
	Pendulum *systems.Pendulum
	Trail    *systems.Trail
	Vortex   *systems.Vortex
	Hexagon  *renderer.Hexagon
}

// Game is the frame orchestrator.
type Game struct {
	state AnimationState
	opts  Options
	cfg   *config.Config

	grid  *renderer.Grid
	beams *renderer.BeamFan

	// Graphics-only collaborators, nil in headless mode
	surface *renderer.Surface
	hud     *ui.HUD

	// Per-frame scratch reused across ticks
	sceneList  renderer.DrawList
	trailList  renderer.DrawList
	beamList   renderer.DrawList
	gridList   renderer.DrawList
	vortexList renderer.DrawList
	vortexPos  []components.Vec2

	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	tick    int32
	start   time.Time
	now     func() time.Time
	done    bool
	bob     components.Vec2
	speed   float64
	beamsOn bool
}

// New creates a game with all sub-state initialized: pendulum at its
// initial angle with zero velocity, empty trail, freshly seeded vortex,
// start timestamp captured.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		opts: opts,
		cfg:  cfg,
		now:  time.Now,
		state: AnimationState{
			Pendulum: systems.NewPendulum(
				cfg.Derived.Anchor,
				cfg.Pendulum.Length,
				cfg.Pendulum.Gravity,
				cfg.Pendulum.Damping,
				cfg.Derived.InitialAngle,
			),
			Trail: systems.NewTrail(cfg.Trail.Length),
			Vortex: systems.NewVortex(
				rng,
				cfg.Derived.VortexCenter,
				cfg.Vortex.Particles,
				cfg.Vortex.RotationSpeed,
				cfg.Vortex.RadiusMin,
				cfg.Vortex.RadiusMax,
			),
			Hexagon: renderer.NewHexagon(cfg.Hexagon.Side, cfg.Derived.HexRotationStep),
		},
		grid: renderer.NewGrid(cfg.Screen.Width, cfg.Screen.Height, cfg.Grid.Spacing, cfg.Grid.WarpRadius),
		beams: renderer.NewBeamFan(
			cfg.Beams.Count,
			cfg.Beams.Length,
			cfg.Derived.BeamHalfSpread,
			cfg.Beams.Threshold,
		),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		vortexPos: make([]components.Vec2, 0, cfg.Vortex.Particles),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	if !opts.Headless {
		g.surface = renderer.NewSurface(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		if opts.ShowHUD {
			g.hud = ui.NewHUD()
		}
	}

	g.start = g.now()
	return g, nil
}

// Update advances the simulation one tick: the pendulum first, then the
// state the visual effects read from it, then the independent vortex.
func (g *Game) Update() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhasePhysics)

	g.state.Pendulum.Step()
	g.bob = g.state.Pendulum.Bob()
	g.speed = g.state.Pendulum.LinearSpeed()
	g.state.Hexagon.Rotate()
	g.state.Trail.Push(g.bob)

	g.perf.StartPhase(telemetry.PhaseVortex)
	g.state.Vortex.Update()

	g.tick++
}

// UpdateHeadless runs one tick without any drawing and evaluates the
// termination condition. Elapsed time is derived from the tick count so
// headless runs are deterministic.
func (g *Game) UpdateHeadless() {
	g.Update()
	g.beamsOn = g.speed > g.beams.Threshold()
	g.perf.EndTick()
	g.recordTelemetry()
	g.checkTermination()
}

// checkTermination flips the game to its terminal state once the
// elapsed time reaches the limit or the tick budget is spent. Runs once
// per tick, after rendering.
func (g *Game) checkTermination() {
	if g.opts.MaxTicks > 0 && int(g.tick) >= g.opts.MaxTicks {
		g.done = true
	}
	if g.Elapsed() >= g.cfg.Run.TimeLimitSec {
		g.done = true
	}
}

// recordTelemetry writes the frame trace and, at each stats window
// boundary, logs and persists the timing aggregate.
func (g *Game) recordTelemetry() {
	if g.output != nil {
		rec := telemetry.FrameRecord{
			Tick:            g.tick,
			Angle:           g.state.Pendulum.Angle,
			AngularVelocity: g.state.Pendulum.AngularVelocity,
			BobX:            g.bob.X,
			BobY:            g.bob.Y,
			Speed:           g.speed,
			BeamsOn:         g.beamsOn,
		}
		if err := g.output.WriteTrace(rec); err != nil {
			slog.Error("writing frame trace", "error", err)
		}
	}

	window := int32(g.cfg.Derived.TicksPerWindow)
	if window <= 0 || g.tick%window != 0 {
		return
	}
	stats := g.perf.Stats()
	if g.opts.LogStats {
		slog.Info("frame stats",
			"tick", g.tick,
			"elapsed_sec", g.Elapsed(),
			"mean_tick", stats.MeanTick,
			"p99_tick", stats.P99Tick,
			"angle", g.state.Pendulum.Angle,
			"speed", g.speed,
		)
	}
	if err := g.output.WritePerf(stats, g.tick); err != nil {
		slog.Error("writing perf stats", "error", err)
	}
}

// Elapsed returns seconds since the run started. Headless runs count
// simulated time; graphical runs use the wall clock.
func (g *Game) Elapsed() float64 {
	if g.opts.Headless {
		return float64(g.tick) * g.cfg.Derived.TickSeconds
	}
	return g.now().Sub(g.start).Seconds()
}

// Done reports whether the run has reached its terminal state.
func (g *Game) Done() bool {
	return g.done
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// State exposes the animation state aggregate.
func (g *Game) State() *AnimationState {
	return &g.state
}

// BeamsOn reports whether the beam fan rendered on the last tick.
func (g *Game) BeamsOn() bool {
	return g.beamsOn
}

// Unload releases graphics resources and closes run output.
func (g *Game) Unload() {
	if g.surface != nil {
		g.surface.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing run output", "error", err)
	}
}
