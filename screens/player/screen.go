package player

import (
	"fmt"

	"archive-stream/pkg/playback"
	"archive-stream/ui"
	"archive-stream/widgets/progressbar"
	"archive-stream/widgets/togglebutton"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// NewScreen takes ownership of window and renderer and prepares a streaming
// texture for frames of the given size. A missing font is not fatal: the
// button is then drawn without its label.
func NewScreen(window *sdl.Window, renderer *sdl.Renderer, cfg playback.Config, opts Options) (*Screen, error) {
	if opts.FrameWidth <= 0 || opts.FrameHeight <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.FrameWidth, opts.FrameHeight)
	}

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING,
		int32(opts.FrameWidth), int32(opts.FrameHeight))
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %v", err)
	}

	if info, err := renderer.GetInfo(); err == nil {
		accel := "software"
		if info.Flags&sdl.RENDERER_ACCELERATED != 0 {
			accel = "hardware"
		}
		log.Printf("NewScreen: renderer %s (%s), frame %dx%d", info.Name, accel, opts.FrameWidth, opts.FrameHeight)
	}

	font, err := ui.LoadFont(opts.FontPath, opts.FontSize)
	if err != nil {
		log.Warnf("NewScreen: button label disabled: %v", err)
	}

	return &Screen{
		window:      window,
		renderer:    renderer,
		texture:     texture,
		font:        font,
		frameWidth:  opts.FrameWidth,
		frameHeight: opts.FrameHeight,
		button:      togglebutton.NewWidget(cfg, font),
		progress:    progressbar.NewWidget(cfg),
	}, nil
}

// Present uploads frame, stretches it over the whole window, draws the
// overlay on top and flips.
func (s *Screen) Present(frame []byte, overlay playback.Overlay) error {
	if err := s.upload(frame); err != nil {
		return err
	}

	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("failed to copy frame: %v", err)
	}

	if err := s.button.Draw(s.renderer, overlay.Button, overlay.Label); err != nil {
		// Missing glyphs only cost the label.
		log.Debugf("Present: button label: %v", err)
	}
	if err := s.progress.Draw(s.renderer, overlay.Bar, overlay.Progress); err != nil {
		log.Debugf("Present: progress bar: %v", err)
	}

	s.renderer.Present()
	return nil
}

// upload copies packed RGBA rows into the texture, honouring its pitch.
func (s *Screen) upload(frame []byte) error {
	rowBytes := s.frameWidth * 4
	if len(frame) < rowBytes*s.frameHeight {
		return fmt.Errorf("frame is %d bytes, want %d", len(frame), rowBytes*s.frameHeight)
	}

	pixels, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock texture: %v", err)
	}
	defer s.texture.Unlock()

	copyRows(pixels, pitch, frame, rowBytes, s.frameHeight)
	return nil
}

// copyRows copies rows of rowBytes from a tightly packed src into dst whose
// rows are pitch bytes apart.
func copyRows(dst []byte, pitch int, src []byte, rowBytes, rows int) {
	if pitch == rowBytes {
		copy(dst, src[:rowBytes*rows])
		return
	}
	for y := 0; y < rows; y++ {
		copy(dst[y*pitch:y*pitch+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
}

// Resize switches between a size×size window and desktop fullscreen.
func (s *Screen) Resize(mode playback.DisplayMode, size playback.Size) error {
	if mode == playback.Fullscreen {
		if err := s.window.SetFullscreen(uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)); err != nil {
			return fmt.Errorf("failed to enter fullscreen: %v", err)
		}
		return nil
	}

	if err := s.window.SetFullscreen(0); err != nil {
		return fmt.Errorf("failed to leave fullscreen: %v", err)
	}
	s.window.SetSize(size.W, size.H)
	return nil
}

// DesktopSize returns the desktop resolution of the display holding the window.
func (s *Screen) DesktopSize() (playback.Size, error) {
	idx, err := s.window.GetDisplayIndex()
	if err != nil {
		idx = 0
	}
	mode, err := sdl.GetDesktopDisplayMode(idx)
	if err != nil {
		return playback.Size{}, fmt.Errorf("failed to get display mode: %v", err)
	}
	return playback.Size{W: mode.W, H: mode.H}, nil
}

// PollEvents drains the SDL queue, keeping only what playback reacts to.
func (s *Screen) PollEvents() []playback.Event {
	var events []playback.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := translate(event); ok {
			events = append(events, ev)
		}
	}
	return events
}

func translate(event sdl.Event) (playback.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return playback.Event{Kind: playback.EventQuit}, true
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return playback.Event{}, false
		}
		return playback.Event{Kind: playback.EventClick, X: e.X, Y: e.Y}, true
	}
	return playback.Event{}, false
}

// Close destroys the texture, font, renderer and window. Safe to call twice.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		if s.texture != nil {
			s.texture.Destroy()
		}
		if s.font != nil {
			s.font.Close()
		}
		if s.renderer != nil {
			s.renderer.Destroy()
		}
		if s.window != nil {
			s.window.Destroy()
		}
	})
	return nil
}

var _ playback.Surface = (*Screen)(nil)
