package performance

import (
	"sync"
	"time"
)

// window keeps the last len(samples) durations and their running sum.
// Callers hold Monitor.mu.
type window struct {
	samples []time.Duration
	next    int
	n       int
	sum     time.Duration
}

func newWindow(size int) *window {
	if size < 1 {
		size = 1
	}
	return &window{samples: make([]time.Duration, size)}
}

func (w *window) add(d time.Duration) {
	w.sum += d - w.samples[w.next]
	w.samples[w.next] = d
	w.next = (w.next + 1) % len(w.samples)
	if w.n < len(w.samples) {
		w.n++
	}
}

func (w *window) mean() time.Duration {
	if w.n == 0 {
		return 0
	}
	return w.sum / time.Duration(w.n)
}

// Monitor tracks decode and render cost of the playback loop and how many
// frames were presented later than their pacing slot.
type Monitor struct {
	decodeTimes *window
	renderTimes *window
	lateFrames  int
	totalFrames int
	seeks       int
	startTime   time.Time
	mu          sync.RWMutex
}

// Report contains aggregated performance metrics
type Report struct {
	AvgDecodeMs   float64 // Average decode time in milliseconds
	AvgRenderMs   float64 // Average render time in milliseconds
	TotalFrames   int     // Frames presented
	LateFrames    int     // Frames whose decode+render overran the frame interval
	LateRate      float64 // Percentage of late frames
	Seeks         int     // Seeks issued
	UptimeSeconds int64   // Seconds since monitor started
}

// NewMonitor creates a monitor averaging over the last windowSize frames.
func NewMonitor(windowSize int) *Monitor {
	return &Monitor{
		decodeTimes: newWindow(windowSize),
		renderTimes: newWindow(windowSize),
		startTime:   time.Now(),
	}
}

// RecordDecode records the time taken to pull one frame from the source
func (m *Monitor) RecordDecode(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.decodeTimes.add(d)
	m.totalFrames++
}

// RecordRender records the time taken to present a frame with its overlay
func (m *Monitor) RecordRender(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.renderTimes.add(d)
}

// RecordLate counts a frame that missed its pacing slot
func (m *Monitor) RecordLate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lateFrames++
}

// RecordSeek counts a seek request
func (m *Monitor) RecordSeek() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seeks++
}

// GetReport generates a performance report with current metrics
func (m *Monitor) GetReport() Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lateRate := 0.0
	if m.totalFrames > 0 {
		lateRate = (float64(m.lateFrames) / float64(m.totalFrames)) * 100.0
	}

	return Report{
		AvgDecodeMs:   float64(m.decodeTimes.mean().Microseconds()) / 1000.0,
		AvgRenderMs:   float64(m.renderTimes.mean().Microseconds()) / 1000.0,
		TotalFrames:   m.totalFrames,
		LateFrames:    m.lateFrames,
		LateRate:      lateRate,
		Seeks:         m.seeks,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}

// IsHealthy reports whether decode plus render fit in the given frame
// interval on average and fewer than 5% of frames ran late.
func (r Report) IsHealthy(interval time.Duration) bool {
	budgetMs := float64(interval.Microseconds()) / 1000.0
	return r.LateRate < 5.0 && r.AvgDecodeMs+r.AvgRenderMs <= budgetMs
}
