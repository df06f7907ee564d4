// Package startsignal provides the one-shot event that gates the first video
// frame on the audio player having (probably) started.
package startsignal

import (
	"context"
	"sync"
)

// Signal is a single-transition event: unset -> set, never reset.
// The zero value is not usable; create one with New.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// New returns an unset signal.
func New() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Set marks the signal as set. It reports whether this call performed the
// transition; every later call is a no-op returning false.
func (s *Signal) Set() bool {
	fired := false
	s.once.Do(func() {
		close(s.ch)
		fired = true
	})
	return fired
}

// IsSet reports whether Set has been called.
func (s *Signal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Wait blocks until the signal is set or ctx is done. There is no timeout of
// its own: with context.Background it waits forever.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
