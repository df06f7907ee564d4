package playback

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"archive-stream/pkg/performance"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

// DefaultReportInterval is how often the loop logs a performance summary.
const DefaultReportInterval = 5 * time.Second

// Loop plays a FrameSource onto a Surface once the start Waiter releases it.
type Loop struct {
	cfg     Config
	src     FrameSource
	surface Surface
	start   Waiter

	clock          clock.Clock
	monitor        *performance.Monitor
	reportInterval time.Duration
	lastReport     time.Time
	pacer          *pacer

	state    State
	mode     DisplayMode
	windowed Size
	size     Size

	releaseOnce sync.Once
}

// Option customises a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock used for pacing and timing.
func WithClock(c clock.Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithMonitor records decode and render timings into m.
func WithMonitor(m *performance.Monitor) Option {
	return func(l *Loop) { l.monitor = m }
}

// WithReportInterval sets how often the performance summary is logged.
// Zero or negative disables the summary.
func WithReportInterval(d time.Duration) Option {
	return func(l *Loop) { l.reportInterval = d }
}

// NewLoop builds a loop in the WaitingForAudioStart state. The surface is
// expected to already be open at FrameSize(src).
func NewLoop(cfg Config, src FrameSource, surface Surface, start Waiter, opts ...Option) *Loop {
	l := &Loop{
		cfg:            cfg,
		src:            src,
		surface:        surface,
		start:          start,
		clock:          clock.New(),
		reportInterval: DefaultReportInterval,
		state:          WaitingForAudioStart,
		mode:           Windowed,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.monitor == nil {
		l.monitor = performance.NewMonitor(120)
	}

	l.windowed = FrameSize(src)
	l.size = l.windowed

	fps := src.FrameRate()
	if fps <= 0 {
		fps = cfg.DefaultFrameRate
	}
	if fps <= 0 {
		fps = 60
	}
	l.pacer = newPacer(l.clock, fps)
	return l
}

// FrameSize is the windowed surface size for src: one window pixel per
// frame pixel.
func FrameSize(src FrameSource) Size {
	return Size{W: int32(src.Width()), H: int32(src.Height())}
}

// State returns the current state of the loop.
func (l *Loop) State() State { return l.state }

// Mode returns the current display mode.
func (l *Loop) Mode() DisplayMode { return l.mode }

// Size returns the current surface size.
func (l *Loop) Size() Size { return l.size }

// Run waits for the start signal and then plays until the stream ends, the
// surface reports quit, or ctx is cancelled. The source and surface are
// released before Run returns. End of stream and quit return nil.
func (l *Loop) Run(ctx context.Context) error {
	defer l.release()

	log.Printf("Run: waiting for audio to start")
	if err := l.start.Wait(ctx); err != nil {
		l.state = Stopped
		return err
	}
	l.state = Running
	l.lastReport = l.clock.Now()
	log.Printf("Run: playing %d frame(s) at %.2ffps", l.src.FrameCount(), l.src.FrameRate())

	for l.state == Running {
		if err := ctx.Err(); err != nil {
			l.state = Stopped
			return err
		}
		l.step()
	}

	l.logReport()
	return nil
}

// step runs one Running iteration: pull, present, pace, handle input.
func (l *Loop) step() {
	decodeStart := l.clock.Now()
	frame, err := l.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Printf("step: end of stream at frame %d", l.src.Position())
		} else {
			log.Errorf("step: reading frame failed, stopping: %v", err)
		}
		l.state = Stopped
		return
	}
	l.monitor.RecordDecode(l.clock.Since(decodeStart))

	renderStart := l.clock.Now()
	if err := l.surface.Present(frame, l.overlay()); err != nil {
		log.Warnf("step: present failed: %v", err)
	}
	l.monitor.RecordRender(l.clock.Since(renderStart))

	if late := l.pacer.tick(); late {
		l.monitor.RecordLate()
	}

	for _, ev := range l.surface.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			log.Printf("step: quit requested")
			l.state = Stopped
			return
		case EventClick:
			l.handleClick(ev.X, ev.Y)
		}
	}

	l.maybeReport()
}

func (l *Loop) overlay() Overlay {
	return Overlay{
		Mode:     l.mode,
		Label:    l.cfg.Label(l.mode),
		Button:   l.cfg.ButtonRect(l.size),
		Bar:      l.cfg.ProgressRect(l.size),
		Progress: Progress(l.src.Position(), l.src.FrameCount()),
	}
}

// handleClick toggles the display mode when the button is hit, otherwise
// seeks when the progress bar is hit. The button wins where they overlap.
func (l *Loop) handleClick(x, y int32) {
	if l.cfg.ButtonRect(l.size).Contains(x, y) {
		l.toggleMode()
		return
	}

	bar := l.cfg.ProgressRect(l.size)
	if !bar.Contains(x, y) {
		return
	}
	target := SeekTarget(x-bar.X, bar.W, l.src.FrameCount())
	log.Debugf("handleClick: seek to frame %d", target)
	if err := l.src.Seek(target); err != nil {
		log.Warnf("handleClick: seek to frame %d failed: %v", target, err)
		return
	}
	l.monitor.RecordSeek()
}

func (l *Loop) toggleMode() {
	next := l.mode.Toggle()

	desktop := l.windowed
	if next == Fullscreen {
		d, err := l.surface.DesktopSize()
		if err != nil {
			log.Warnf("toggleMode: cannot query desktop size: %v", err)
			return
		}
		desktop = d
	}

	size := WindowSize(next, l.windowed, desktop)
	if err := l.surface.Resize(next, size); err != nil {
		log.Warnf("toggleMode: switching to %s failed: %v", next, err)
		return
	}
	log.Printf("toggleMode: %s -> %s (%dx%d)", l.mode, next, size.W, size.H)
	l.mode = next
	l.size = size
}

func (l *Loop) maybeReport() {
	if l.reportInterval <= 0 {
		return
	}
	if now := l.clock.Now(); now.Sub(l.lastReport) >= l.reportInterval {
		l.logReport()
		l.lastReport = now
	}
}

func (l *Loop) logReport() {
	report := l.monitor.GetReport()
	health := "OK"
	if !report.IsHealthy(l.pacer.interval) {
		health = "DEGRADED"
	}
	log.WithFields(log.Fields{
		"health":   health,
		"decodeMs": report.AvgDecodeMs,
		"renderMs": report.AvgRenderMs,
		"frames":   report.TotalFrames,
		"late":     report.LateFrames,
		"lateRate": report.LateRate,
		"seeks":    report.Seeks,
		"uptime":   report.UptimeSeconds,
	}).Info("Performance")
}

// release closes the source and then the surface, once.
func (l *Loop) release() {
	l.releaseOnce.Do(func() {
		l.state = Stopped
		if err := l.src.Close(); err != nil {
			log.Warnf("release: closing source: %v", err)
		}
		if err := l.surface.Close(); err != nil {
			log.Warnf("release: closing surface: %v", err)
		}
	})
}
