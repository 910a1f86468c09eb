// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlvx/neonpendulum/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Run       RunConfig       `yaml:"run"`
	Pendulum  PendulumConfig  `yaml:"pendulum"`
	Hexagon   HexagonConfig   `yaml:"hexagon"`
	Trail     TrailConfig     `yaml:"trail"`
	Beams     BeamsConfig     `yaml:"beams"`
	Grid      GridConfig      `yaml:"grid"`
	Vortex    VortexConfig    `yaml:"vortex"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// RunConfig holds the run-length limit.
type RunConfig struct {
	TimeLimitSec float64 `yaml:"time_limit_sec"` // wall-clock limit before exit
}

// PendulumConfig holds the damped-pendulum parameters.
type PendulumConfig struct {
	AnchorX         float64 `yaml:"anchor_x"`
	AnchorY         float64 `yaml:"anchor_y"`
	Length          float64 `yaml:"length"`            // arm length in pixels
	Gravity         float64 `yaml:"gravity"`           // pixels/tick^2
	Damping         float64 `yaml:"damping"`           // velocity retained per tick, in (0,1]
	InitialAngleDeg float64 `yaml:"initial_angle_deg"` // from vertical
}

// HexagonConfig holds the rotating-hexagon parameters.
type HexagonConfig struct {
	Side             float64 `yaml:"side"`               // side length (= circumradius for a regular hexagon)
	RotationSpeedDeg float64 `yaml:"rotation_speed_deg"` // degrees per tick
}

// TrailConfig holds the neon-trail parameters.
type TrailConfig struct {
	Length int `yaml:"length"` // frames of persistence
}

// BeamsConfig holds the light-beam parameters.
type BeamsConfig struct {
	Threshold float64 `yaml:"threshold"`  // bob linear speed gate, pixels/tick
	SpreadDeg float64 `yaml:"spread_deg"` // total angular spread per beam
	Count     int     `yaml:"count"`
	Length    float64 `yaml:"length"` // beam length in pixels
}

// GridConfig holds the background-grid parameters.
type GridConfig struct {
	Spacing    int     `yaml:"spacing"`     // lattice spacing in pixels
	WarpRadius float64 `yaml:"warp_radius"` // distance from the bob inside which points snap to rings
}

// VortexConfig holds the particle-vortex parameters.
type VortexConfig struct {
	Particles     int     `yaml:"particles"`
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per tick, clockwise
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	CenterX       float64 `yaml:"center_x"` // 0 = screen center
	CenterY       float64 `yaml:"center_y"` // 0 = screen center
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowSec      float64 `yaml:"stats_window_sec"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Anchor           components.Vec2 // pendulum anchor point
	InitialAngle     float64         // radians
	HexRotationStep  float64         // radians per tick
	BeamHalfSpread   float64         // radians
	VortexCenter     components.Vec2
	TickSeconds      float64 // 1 / target FPS
	TicksPerWindow   int     // stats window in ticks
	ScreenW, ScreenH float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Anchor = components.Vec2{X: c.Pendulum.AnchorX, Y: c.Pendulum.AnchorY}
	c.Derived.InitialAngle = c.Pendulum.InitialAngleDeg * math.Pi / 180
	c.Derived.HexRotationStep = c.Hexagon.RotationSpeedDeg * math.Pi / 180
	c.Derived.BeamHalfSpread = c.Beams.SpreadDeg * math.Pi / 180 / 2
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	// Vortex center defaults to the screen center if not specified
	cx := c.Vortex.CenterX
	if cx == 0 {
		cx = c.Derived.ScreenW / 2
	}
	cy := c.Vortex.CenterY
	if cy == 0 {
		cy = c.Derived.ScreenH / 2
	}
	c.Derived.VortexCenter = components.Vec2{X: cx, Y: cy}

	if c.Screen.TargetFPS > 0 {
		c.Derived.TickSeconds = 1.0 / float64(c.Screen.TargetFPS)
		c.Derived.TicksPerWindow = int(c.Telemetry.StatsWindowSec * float64(c.Screen.TargetFPS))
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
