// Package telemetry tracks per-frame timings and writes run output.
package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for the frame pipeline, in invocation order.
const (
	PhasePhysics = "physics"
	PhaseHexagon = "hexagon"
	PhaseTrail   = "trail"
	PhaseBeams   = "beams"
	PhaseGrid    = "grid"
	PhaseVortex  = "vortex"
	PhasePresent = "present"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize ticks
// (60 for one second at the reference frame rate).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick closes the current frame and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// SampleCount returns the number of recorded ticks, capped at the window.
func (p *PerfCollector) SampleCount() int {
	return p.sampleCount
}

// PerfStats aggregates the current window.
type PerfStats struct {
	Samples    int
	MeanTick   time.Duration
	StdDevTick time.Duration
	P99Tick    time.Duration
	PhaseMeans map[string]time.Duration
}

// Stats aggregates the rolling window: mean, standard deviation and
// p99 of the tick duration, plus the per-phase means.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Samples:    p.sampleCount,
		PhaseMeans: make(map[string]time.Duration),
	}
	if p.sampleCount == 0 {
		return s
	}

	durations := make([]float64, 0, p.sampleCount)
	phaseTotals := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		sample := &p.samples[i]
		durations = append(durations, float64(sample.TickDuration))
		for name, d := range sample.Phases {
			phaseTotals[name] += d
		}
	}
	sort.Float64s(durations)

	s.MeanTick = time.Duration(stat.Mean(durations, nil))
	if p.sampleCount > 1 {
		s.StdDevTick = time.Duration(stat.StdDev(durations, nil))
	}
	s.P99Tick = time.Duration(stat.Quantile(0.99, stat.Empirical, durations, nil))
	for name, total := range phaseTotals {
		s.PhaseMeans[name] = total / time.Duration(p.sampleCount)
	}
	return s
}

// SortedPhases returns the phase names of the aggregated window in
// pipeline order, skipping phases with no samples.
func (s PerfStats) SortedPhases() []string {
	order := []string{
		PhasePhysics, PhaseHexagon, PhaseTrail,
		PhaseBeams, PhaseGrid, PhaseVortex, PhasePresent,
	}
	names := make([]string, 0, len(order))
	for _, name := range order {
		if _, ok := s.PhaseMeans[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
