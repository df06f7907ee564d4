package playback

// DisplayMode is the windowed/fullscreen state of the player.
type DisplayMode int

const (
	Windowed DisplayMode = iota
	Fullscreen
)

// Toggle returns the other mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == Fullscreen {
		return Windowed
	}
	return Fullscreen
}

// String returns a human-readable mode name
func (m DisplayMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Label returns the button text for the mode the player is currently in.
func (c Config) Label(m DisplayMode) string {
	if m == Fullscreen {
		return c.WindowedLabel
	}
	return c.FullscreenLabel
}

// WindowSize is the surface size for a mode: the desktop size when fullscreen,
// the remembered windowed size otherwise.
func WindowSize(m DisplayMode, windowed, desktop Size) Size {
	if m == Fullscreen {
		return desktop
	}
	return windowed
}
