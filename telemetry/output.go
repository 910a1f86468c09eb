package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/mlvx/neonpendulum/config"
)

// FrameRecord is one row of the per-tick animation trace.
type FrameRecord struct {
	Tick            int32   `csv:"tick"`
	Angle           float64 `csv:"angle"`
	AngularVelocity float64 `csv:"angular_velocity"`
	BobX            float64 `csv:"bob_x"`
	BobY            float64 `csv:"bob_y"`
	Speed           float64 `csv:"speed"`
	BeamsOn         bool    `csv:"beams_on"`
}

// PerfRecord is one row of the per-window frame-timing log.
type PerfRecord struct {
	WindowEndTick int32   `csv:"window_end"`
	Samples       int     `csv:"samples"`
	MeanTickMs    float64 `csv:"mean_tick_ms"`
	StdDevTickMs  float64 `csv:"stddev_tick_ms"`
	P99TickMs     float64 `csv:"p99_tick_ms"`
}

// ToRecord flattens the window aggregate into a CSV row.
func (s PerfStats) ToRecord(windowEnd int32) PerfRecord {
	const ms = float64(time.Millisecond)
	return PerfRecord{
		WindowEndTick: windowEnd,
		Samples:       s.Samples,
		MeanTickMs:    float64(s.MeanTick) / ms,
		StdDevTickMs:  float64(s.StdDevTick) / ms,
		P99TickMs:     float64(s.P99Tick) / ms,
	}
}

// OutputManager writes run output as CSV plus a config snapshot.
type OutputManager struct {
	dir       string
	traceFile *os.File
	perfFile  *os.File

	traceHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates the output directory and its files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "trace.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating trace.csv: %w", err)
	}
	om.traceFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.traceFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the active configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTrace appends one frame record to trace.csv.
func (om *OutputManager) WriteTrace(rec FrameRecord) error {
	if om == nil {
		return nil
	}

	records := []FrameRecord{rec}
	if !om.traceHeaderWritten {
		if err := gocsv.Marshal(records, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		om.traceHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.traceFile); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// WritePerf appends one window aggregate to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}

	records := []PerfRecord{stats.ToRecord(windowEnd)}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var first error
	if err := om.traceFile.Close(); err != nil {
		first = err
	}
	if err := om.perfFile.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
