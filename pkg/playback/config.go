package playback

// Color is an RGBA color used by the overlay.
type Color struct {
	R, G, B, A uint8
}

// Config holds every geometric and cosmetic constant of the player window.
// It is passed by value and never changed after the loop is built.
type Config struct {
	ButtonWidth   int32
	ButtonHeight  int32
	ButtonPadding int32
	// Horizontal inset of the label inside the button.
	ButtonTextInset int32

	ProgressHeight  int32
	ProgressPadding int32

	ButtonFill       Color
	ButtonBorder     Color
	ButtonBorderSize int32
	ButtonText       Color

	ProgressBackground Color
	ProgressForeground Color

	// Labels shown on the toggle button in each mode.
	FullscreenLabel string // shown while windowed
	WindowedLabel   string // shown while fullscreen

	// DefaultFrameRate paces sources that report no frame rate.
	DefaultFrameRate float64
}

// DefaultConfig returns the stock player layout: a 150x30 button above a
// 10px red progress bar.
func DefaultConfig() Config {
	return Config{
		ButtonWidth:     150,
		ButtonHeight:    30,
		ButtonPadding:   10,
		ButtonTextInset: 10,

		ProgressHeight:  10,
		ProgressPadding: 10,

		ButtonFill:       Color{0, 0, 0, 255},
		ButtonBorder:     Color{200, 200, 200, 255},
		ButtonBorderSize: 2,
		ButtonText:       Color{255, 255, 255, 255},

		ProgressBackground: Color{50, 50, 50, 255},
		ProgressForeground: Color{255, 0, 0, 255},

		FullscreenLabel: "⛶",
		WindowedLabel:   "🗗",

		DefaultFrameRate: 60,
	}
}
