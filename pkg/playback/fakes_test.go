package playback

import (
	"errors"
	"io"
	"sync"
)

type fakeSource struct {
	mu sync.Mutex

	width, height int
	fps           float64
	count         int // 0 plays forever
	readErr       error

	next      int
	pos       int
	nextCalls int
	seeks     []int
	closes    int
	frame     []byte
}

func newFakeSource(width, height int, fps float64, count int) *fakeSource {
	return &fakeSource{
		width:  width,
		height: height,
		fps:    fps,
		count:  count,
		frame:  make([]byte, 4),
	}
}

func (s *fakeSource) Width() int         { return s.width }
func (s *fakeSource) Height() int        { return s.height }
func (s *fakeSource) FrameRate() float64 { return s.fps }
func (s *fakeSource) FrameCount() int    { return s.count }

func (s *fakeSource) Next() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCalls++
	if s.readErr != nil {
		return nil, s.readErr
	}
	if s.count > 0 && s.next >= s.count {
		return nil, io.EOF
	}
	s.pos = s.next
	s.next++
	return s.frame, nil
}

func (s *fakeSource) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

func (s *fakeSource) Seek(frame int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeks = append(s.seeks, frame)
	if frame < 0 {
		frame = 0
	}
	s.next = frame
	return nil
}

func (s *fakeSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

func (s *fakeSource) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextCalls
}

type resize struct {
	mode DisplayMode
	size Size
}

type fakeSurface struct {
	mu sync.Mutex

	desktop   Size
	script    [][]Event
	resizeErr error

	polls    int
	overlays []Overlay
	resizes  []resize
	closes   int
}

func newFakeSurface(script ...[]Event) *fakeSurface {
	return &fakeSurface{
		desktop: Size{W: 1920, H: 1080},
		script:  script,
	}
}

func (s *fakeSurface) Present(frame []byte, overlay Overlay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if frame == nil {
		return errors.New("nil frame")
	}
	s.overlays = append(s.overlays, overlay)
	return nil
}

func (s *fakeSurface) Resize(mode DisplayMode, size Size) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resizeErr != nil {
		return s.resizeErr
	}
	s.resizes = append(s.resizes, resize{mode, size})
	return nil
}

func (s *fakeSurface) DesktopSize() (Size, error) { return s.desktop, nil }

func (s *fakeSurface) PollEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.polls >= len(s.script) {
		return nil
	}
	evs := s.script[s.polls]
	s.polls++
	return evs
}

func (s *fakeSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

func (s *fakeSurface) lastOverlay() Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlays[len(s.overlays)-1]
}

func click(x, y int32) []Event { return []Event{{Kind: EventClick, X: x, Y: y}} }

func quit() []Event { return []Event{{Kind: EventQuit}} }
