package playback

import "math"

// Size is a width/height pair in pixels.
type Size struct {
	W, H int32
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ProgressRect is the full-width bar along the bottom of the window.
func (c Config) ProgressRect(win Size) Rect {
	return Rect{
		X: 0,
		Y: win.H - c.ProgressHeight - c.ProgressPadding,
		W: win.W,
		H: c.ProgressHeight,
	}
}

// ButtonRect is the toggle button, sitting above the progress bar.
func (c Config) ButtonRect(win Size) Rect {
	return Rect{
		X: c.ButtonPadding,
		Y: win.H - c.ButtonHeight - c.ProgressHeight - 2*c.ProgressPadding,
		W: c.ButtonWidth,
		H: c.ButtonHeight,
	}
}

// Progress returns current/total clamped to [0, 1], and 0 when total is not
// positive.
func Progress(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	ratio := float64(current) / float64(total)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	}
	return ratio
}

// FillWidth is the filled width of a bar of the given width.
func FillWidth(barWidth int32, ratio float64) int32 {
	return int32(float64(barWidth) * ratio)
}

// SeekTarget converts a click on the progress bar into a frame index:
// round(clickX/barWidth * frameCount). A zero-width bar or zero frame count
// yields frame 0.
func SeekTarget(clickX, barWidth int32, frameCount int) int {
	if barWidth <= 0 || frameCount <= 0 {
		return 0
	}
	ratio := float64(clickX) / float64(barWidth)
	return int(math.Round(ratio * float64(frameCount)))
}
