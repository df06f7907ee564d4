package progressbar

import (
	"archive-stream/pkg/playback"
	"archive-stream/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// Widget draws the seek bar: a background track with the played part filled.
type Widget struct {
	background sdl.Color
	foreground sdl.Color
}

func NewWidget(cfg playback.Config) *Widget {
	return &Widget{
		background: ui.Color(cfg.ProgressBackground),
		foreground: ui.Color(cfg.ProgressForeground),
	}
}

// Draw renders the bar into rect with ratio of it filled from the left
func (w *Widget) Draw(renderer *sdl.Renderer, rect playback.Rect, ratio float64) error {
	renderer.SetDrawColor(w.background.R, w.background.G, w.background.B, w.background.A)
	if err := renderer.FillRect(ui.SDLRect(rect)); err != nil {
		return err
	}

	fill := playback.FillWidth(rect.W, ratio)
	if fill <= 0 {
		return nil
	}
	renderer.SetDrawColor(w.foreground.R, w.foreground.G, w.foreground.B, w.foreground.A)
	return renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y, W: fill, H: rect.H})
}
