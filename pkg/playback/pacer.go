package playback

import (
	"time"

	"github.com/benbjohnson/clock"
)

// pacer spaces presentations interval apart. The first tick returns at once;
// every later tick sleeps until interval has passed since the previous one.
type pacer struct {
	clock    clock.Clock
	interval time.Duration
	last     time.Time
}

func newPacer(clk clock.Clock, fps float64) *pacer {
	return &pacer{
		clock:    clk,
		interval: frameInterval(fps),
	}
}

func frameInterval(fps float64) time.Duration {
	return time.Duration(float64(time.Second) / fps)
}

// tick reports true when the slot was already missed and no sleep happened.
func (p *pacer) tick() bool {
	now := p.clock.Now()
	if p.last.IsZero() {
		p.last = now
		return false
	}

	next := p.last.Add(p.interval)
	wait := next.Sub(now)
	if wait < 0 {
		// Late: restart the cadence from now rather than rushing to catch up.
		p.last = now
		return true
	}
	if wait > 0 {
		p.clock.Sleep(wait)
	}
	p.last = next
	return false
}

