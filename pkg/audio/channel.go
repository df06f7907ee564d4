// Package audio plays the soundtrack of a stream out-of-band through an
// external command-line player and reports, heuristically, when it started.
package audio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"archive-stream/pkg/startsignal"
)

const (
	// DefaultBinary is the player looked up on PATH.
	DefaultBinary = "ffplay"
	// DefaultStartDelay is how long the player gets to buffer before video starts.
	DefaultStartDelay = 500 * time.Millisecond
)

// ErrPlayerMissing is returned when the player binary cannot be found or started.
var ErrPlayerMissing = errors.New("audio player unavailable")

// Channel launches the external audio player.
type Channel struct {
	binary string
	delay  time.Duration
	clock  clock.Clock

	lookPath func(file string) (string, error)
	command  func(name string, arg ...string) *exec.Cmd
}

// Option customises a Channel.
type Option func(*Channel)

// WithClock replaces the wall clock used to measure the start delay.
func WithClock(c clock.Clock) Option {
	return func(ch *Channel) { ch.clock = c }
}

// WithDelay overrides DefaultStartDelay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(ch *Channel) {
		if d > 0 {
			ch.delay = d
		}
	}
}

// NewChannel creates a channel for the given player binary (DefaultBinary when empty).
func NewChannel(binary string, opts ...Option) *Channel {
	if binary == "" {
		binary = DefaultBinary
	}
	ch := &Channel{
		binary:   binary,
		delay:    DefaultStartDelay,
		clock:    clock.New(),
		lookPath: exec.LookPath,
		command:  exec.Command,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Args returns the player flags: audio only, no window, exit at end of
// stream, no console output.
func Args(uri string) []string {
	return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", uri}
}

// Start spawns the player for uri and returns without waiting for it. Launch
// failures are reported synchronously and wrap ErrPlayerMissing. Once the
// process is running, a background goroutine waits the start delay, sets sig
// exactly once and then reaps the process. Nothing from the player confirms
// that sound is actually playing.
func (c *Channel) Start(uri string, sig *startsignal.Signal) (*Task, error) {
	path, err := c.lookPath(c.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH: %v", ErrPlayerMissing, c.binary, err)
	}

	cmd := c.command(path, Args(uri)...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %v", ErrPlayerMissing, path, err)
	}
	log.Printf("Start: %s started (pid=%d)", c.binary, cmd.Process.Pid)

	t := &Task{
		name: c.binary,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go t.run(c.clock, c.delay, sig)
	return t, nil
}

// Task is the detached player process. Nobody is required to wait for it.
type Task struct {
	name string
	cmd  *exec.Cmd
	done chan struct{}

	mu       sync.Mutex
	err      error
	detached bool
}

func (t *Task) run(clk clock.Clock, delay time.Duration, sig *startsignal.Signal) {
	clk.Sleep(delay)
	if sig.Set() {
		log.Printf("run: %s buffering delay (%s) elapsed, audio assumed started", t.name, delay)
	}

	err := t.cmd.Wait()

	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	close(t.done)

	if err != nil {
		log.Debugf("run: %s exited: %v", t.name, err)
	} else {
		log.Debugf("run: %s exited", t.name)
	}
}

// Pid returns the player's process id.
func (t *Task) Pid() int {
	return t.cmd.Process.Pid
}

// Done is closed after the start delay has passed and the process has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the process exit error once Done is closed.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Detach gives up ownership of the player without terminating it. The process
// keeps playing until it reaches the end of the stream (-autoexit) or the
// whole process group is killed. This leak is accepted.
func (t *Task) Detach() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.detached {
		return
	}
	t.detached = true

	select {
	case <-t.done:
		return
	default:
	}
	log.Warnf("Detach: leaving %s (pid=%d) running; it exits by itself at end of stream", t.name, t.cmd.Process.Pid)
}

// Kill terminates the player if it is still running.
func (t *Task) Kill() error {
	select {
	case <-t.done:
		return nil
	default:
	}
	log.Printf("Kill: stopping %s (pid=%d)", t.name, t.cmd.Process.Pid)
	return killProcess(t.cmd.Process)
}

// killProcess kills p, treating a process that already exited as success.
func killProcess(p *os.Process) error {
	if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
