package ui

import "testing"

func TestFontCandidates(t *testing.T) {
	if got := fontCandidates(""); len(got) != len(systemFonts) {
		t.Fatalf("fontCandidates(\"\") returned %d paths, want %d", len(got), len(systemFonts))
	}

	got := fontCandidates("/opt/fonts/Custom.ttf")
	if got[0] != "/opt/fonts/Custom.ttf" {
		t.Errorf("first candidate = %q, want the configured font", got[0])
	}
	if len(got) != len(systemFonts)+1 {
		t.Errorf("got %d candidates, want %d", len(got), len(systemFonts)+1)
	}
}
