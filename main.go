package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mlvx/neonpendulum/config"
	"github.com/mlvx/neonpendulum/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV trace and config snapshot")
	seed := flag.Int64("seed", 0, "Vortex RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = time limit only)")
	showHUD := flag.Bool("hud", false, "Draw the debug overlay")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		MaxTicks:  *maxTicks,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		ShowHUD:   *showHUD,
	}

	if *headless {
		// Headless mode - pure CPU pipeline, no raylib needed
		g, err := game.New(opts)
		if err != nil {
			slog.Error("failed to initialize", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"time_limit_sec", cfg.Run.TimeLimitSec,
		)

		for !g.Done() {
			g.UpdateHeadless()
		}
		slog.Info("run finished", "tick", g.Tick(), "elapsed_sec", g.Elapsed())
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Pendulum Animation")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting run",
		"seed", rngSeed,
		"screen", cfg.Screen,
		"time_limit_sec", cfg.Run.TimeLimitSec,
	)

	// The close request is observed once per tick, at the top; a frame
	// in progress always runs to completion.
	for !rl.WindowShouldClose() && !g.Done() {
		g.Update()
		g.Draw()
	}

	slog.Info("run finished", "tick", g.Tick(), "elapsed_sec", g.Elapsed())
}
