package player

import (
	"bytes"
	"testing"

	"archive-stream/pkg/playback"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name  string
		event sdl.Event
		want  playback.Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, playback.Event{Kind: playback.EventQuit}, true},
		{"button down", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 320, Y: 465}, playback.Event{Kind: playback.EventClick, X: 320, Y: 465}, true},
		{"button up", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: 320, Y: 465}, playback.Event{}, false},
		{"motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 1, Y: 1}, playback.Event{}, false},
	}
	for _, c := range cases {
		got, ok := translate(c.event)
		if ok != c.ok || got != c.want {
			t.Errorf("%s: translate = %+v, %v; want %+v, %v", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestCopyRowsPacked(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, len(src))
	copyRows(dst, 4, src, 4, 2)
	if !bytes.Equal(dst, src) {
		t.Errorf("dst = %v, want %v", dst, src)
	}
}

func TestCopyRowsPadded(t *testing.T) {
	// Two rows of one RGBA pixel into a texture with 8 byte rows.
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 16)
	copyRows(dst, 8, src, 4, 2)

	want := []byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6, 7, 8, 0, 0, 0, 0}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}
