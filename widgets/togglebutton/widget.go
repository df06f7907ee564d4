package togglebutton

import (
	"archive-stream/pkg/playback"
	"archive-stream/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Widget draws the fullscreen/windowed toggle button
type Widget struct {
	fill       sdl.Color
	border     sdl.Color
	borderSize int32
	text       sdl.Color
	inset      int32
	font       *ttf.Font
}

// NewWidget creates a button styled by cfg. font may be nil, in which case
// the button is drawn without a label.
func NewWidget(cfg playback.Config, font *ttf.Font) *Widget {
	return &Widget{
		fill:       ui.Color(cfg.ButtonFill),
		border:     ui.Color(cfg.ButtonBorder),
		borderSize: cfg.ButtonBorderSize,
		text:       ui.Color(cfg.ButtonText),
		inset:      cfg.ButtonTextInset,
		font:       font,
	}
}

// Draw renders the button into rect with the given label
func (w *Widget) Draw(renderer *sdl.Renderer, rect playback.Rect, label string) error {
	// Background
	renderer.SetDrawColor(w.fill.R, w.fill.G, w.fill.B, w.fill.A)
	renderer.FillRect(ui.SDLRect(rect))

	// Border, drawn inwards one pixel at a time
	renderer.SetDrawColor(w.border.R, w.border.G, w.border.B, w.border.A)
	for i := int32(0); i < w.borderSize && 2*i < rect.W && 2*i < rect.H; i++ {
		renderer.DrawRect(&sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i})
	}

	if w.font == nil {
		return nil
	}

	// Label, vertically centred
	textY := rect.Y + (rect.H-int32(w.font.Height()))/2
	return ui.RenderText(renderer, label, rect.X+w.inset, textY, w.text, w.font)
}
