package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorWindow(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 10; i++ {
		p.StartTick()
		p.StartPhase(PhasePhysics)
		p.StartPhase(PhaseGrid)
		p.EndTick()
	}

	if p.SampleCount() != 4 {
		t.Errorf("sample count = %d, want window size 4", p.SampleCount())
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	p := NewPerfCollector(8)
	s := p.Stats()
	if s.Samples != 0 || s.MeanTick != 0 || s.P99Tick != 0 {
		t.Errorf("stats on empty collector = %+v, want zeros", s)
	}
}

func TestPerfCollectorStats(t *testing.T) {
	p := NewPerfCollector(8)

	for i := 0; i < 3; i++ {
		p.StartTick()
		p.StartPhase(PhasePhysics)
		p.StartPhase(PhaseVortex)
		p.EndTick()
	}

	s := p.Stats()
	if s.Samples != 3 {
		t.Fatalf("samples = %d, want 3", s.Samples)
	}
	if s.MeanTick < 0 {
		t.Errorf("mean tick = %v, want non-negative", s.MeanTick)
	}
	if s.P99Tick < s.MeanTick {
		t.Errorf("p99 (%v) below mean (%v)", s.P99Tick, s.MeanTick)
	}
	if _, ok := s.PhaseMeans[PhasePhysics]; !ok {
		t.Error("physics phase missing from aggregate")
	}
	if _, ok := s.PhaseMeans[PhaseVortex]; !ok {
		t.Error("vortex phase missing from aggregate")
	}
}

func TestSortedPhasesPipelineOrder(t *testing.T) {
	s := PerfStats{PhaseMeans: map[string]time.Duration{
		PhaseVortex:  1,
		PhasePhysics: 1,
		PhaseGrid:    1,
	}}

	got := s.SortedPhases()
	want := []string{PhasePhysics, PhaseGrid, PhaseVortex}
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phase[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
