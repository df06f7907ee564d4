package playback

import "testing"

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultConfig()
	win := Size{W: 640, H: 480}

	if got, want := cfg.ProgressRect(win), (Rect{X: 0, Y: 460, W: 640, H: 10}); got != want {
		t.Errorf("ProgressRect = %+v, want %+v", got, want)
	}
	if got, want := cfg.ButtonRect(win), (Rect{X: 10, Y: 420, W: 150, H: 30}); got != want {
		t.Errorf("ButtonRect = %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	cases := []struct {
		x, y int32
		want bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 20, false},
		{10, 60, false},
		{9, 30, false},
		{20, 19, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name         string
		current, all int
		want         float64
	}{
		{"start", 0, 300, 0},
		{"half", 150, 300, 0.5},
		{"end", 300, 300, 1},
		{"unknown length", 42, 0, 0},
		{"negative length", 42, -1, 0},
		{"past end", 400, 300, 1},
		{"negative position", -3, 300, 0},
	}
	for _, c := range cases {
		if got := Progress(c.current, c.all); got != c.want {
			t.Errorf("%s: Progress(%d, %d) = %v, want %v", c.name, c.current, c.all, got, c.want)
		}
	}
}

func TestFillWidth(t *testing.T) {
	if got := FillWidth(640, 0.5); got != 320 {
		t.Errorf("FillWidth(640, 0.5) = %d, want 320", got)
	}
	if got := FillWidth(640, 0); got != 0 {
		t.Errorf("FillWidth(640, 0) = %d, want 0", got)
	}
}

func TestSeekTarget(t *testing.T) {
	cases := []struct {
		name   string
		x, w   int32
		frames int
		want   int
	}{
		{"half of 300", 320, 640, 300, 150},
		{"left edge", 0, 640, 300, 0},
		{"last pixel rounds to frame count", 639, 640, 300, 300},
		{"rounds half up", 1, 2, 3, 2},
		{"unknown length", 320, 640, 0, 0},
		{"zero width bar", 5, 0, 300, 0},
	}
	for _, c := range cases {
		if got := SeekTarget(c.x, c.w, c.frames); got != c.want {
			t.Errorf("%s: SeekTarget(%d, %d, %d) = %d, want %d", c.name, c.x, c.w, c.frames, got, c.want)
		}
	}
}

func TestWindowSizeToggleTwiceRestoresWindowed(t *testing.T) {
	windowed := Size{W: 853, H: 480}
	desktop := Size{W: 1920, H: 1080}

	mode := Windowed
	mode = mode.Toggle()
	if got := WindowSize(mode, windowed, desktop); got != desktop {
		t.Fatalf("fullscreen size = %+v, want %+v", got, desktop)
	}
	mode = mode.Toggle()
	if got := WindowSize(mode, windowed, desktop); got != windowed {
		t.Fatalf("size after toggling twice = %+v, want %+v", got, windowed)
	}
}

func TestLabelFollowsMode(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Label(Windowed); got != cfg.FullscreenLabel {
		t.Errorf("Label(Windowed) = %q, want %q", got, cfg.FullscreenLabel)
	}
	if got := cfg.Label(Fullscreen); got != cfg.WindowedLabel {
		t.Errorf("Label(Fullscreen) = %q, want %q", got, cfg.WindowedLabel)
	}
}

