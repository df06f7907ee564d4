package player

import (
	"sync"

	"archive-stream/widgets/progressbar"
	"archive-stream/widgets/togglebutton"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Screen is the SDL2 window the playback loop draws on.
type Screen struct {
	// SDL2 objects, owned by the screen and destroyed by Close
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	font     *ttf.Font

	// Decoded frame dimensions, fixed for the life of the texture
	frameWidth  int
	frameHeight int

	// Overlay widgets
	button   *togglebutton.Widget
	progress *progressbar.Widget

	closeOnce sync.Once
}

// Options describes what the screen displays.
type Options struct {
	FrameWidth  int
	FrameHeight int
	FontPath    string
	FontSize    int
}
