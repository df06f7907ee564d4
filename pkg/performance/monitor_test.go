package performance

import (
	"testing"
	"time"
)

func TestWindowMean(t *testing.T) {
	w := newWindow(3)
	if w.mean() != 0 {
		t.Fatal("empty window must average to zero")
	}

	w.add(10 * time.Millisecond)
	w.add(20 * time.Millisecond)
	if got := w.mean(); got != 15*time.Millisecond {
		t.Fatalf("mean = %s", got)
	}

	w.add(30 * time.Millisecond)
	w.add(40 * time.Millisecond) // evicts 10ms
	if got := w.mean(); got != 30*time.Millisecond {
		t.Fatalf("mean after wrap = %s", got)
	}
}

func TestWindowClampsSize(t *testing.T) {
	w := newWindow(0)
	w.add(5 * time.Millisecond)
	w.add(7 * time.Millisecond)
	if got := w.mean(); got != 7*time.Millisecond {
		t.Fatalf("single-slot mean = %s", got)
	}
}

func TestMonitor_Report(t *testing.T) {
	m := NewMonitor(10)
	for i := 0; i < 4; i++ {
		m.RecordDecode(4 * time.Millisecond)
		m.RecordRender(2 * time.Millisecond)
	}
	m.RecordLate()
	m.RecordSeek()

	rep := m.GetReport()
	if rep.TotalFrames != 4 || rep.LateFrames != 1 || rep.Seeks != 1 {
		t.Fatalf("unexpected counters: %+v", rep)
	}
	if rep.AvgDecodeMs != 4 || rep.AvgRenderMs != 2 {
		t.Fatalf("unexpected averages: %+v", rep)
	}
	if rep.LateRate != 25 {
		t.Fatalf("late rate = %f", rep.LateRate)
	}
	if rep.IsHealthy(time.Second / 30) {
		t.Fatal("25% late frames is not healthy")
	}

	if !NewMonitor(10).GetReport().IsHealthy(time.Second / 30) {
		t.Fatal("idle monitor should be healthy")
	}
}
