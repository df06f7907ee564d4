package console

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestReadURL(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"unix newline", "https://archive.org/details/foo\n", "https://archive.org/details/foo"},
		{"windows newline", "https://archive.org/details/foo\r\n", "https://archive.org/details/foo"},
		{"no newline", "https://archive.org/details/foo", "https://archive.org/details/foo"},
		{"only first line", "first\nsecond\n", "first"},
		{"empty line", "\n", ""},
	}
	for _, c := range cases {
		var out bytes.Buffer
		got, err := ReadURL(strings.NewReader(c.input), &out)
		if err != nil {
			t.Fatalf("%s: ReadURL error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: ReadURL = %q, want %q", c.name, got, c.want)
		}
		if out.String() != Prompt {
			t.Errorf("%s: prompt = %q, want %q", c.name, out.String(), Prompt)
		}
	}
}

func TestReadURLNoInput(t *testing.T) {
	_, err := ReadURL(strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestClearWritesEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses cls on windows")
	}
	var out bytes.Buffer
	Clear(&out)
	if out.String() != clearSequence {
		t.Errorf("Clear wrote %q", out.String())
	}
}

func TestBanner(t *testing.T) {
	var out bytes.Buffer
	Banner(&out)
	if !strings.Contains(out.String(), "Archive Streamer") {
		t.Errorf("banner %q has no title", out.String())
	}
	if !strings.Contains(out.String(), "Made by Cr0mb") {
		t.Errorf("banner %q has no author credit", out.String())
	}
}

func TestPrintQR(t *testing.T) {
	var out bytes.Buffer
	if err := PrintQR(&out, "https://archive.org/download/foo/foo.mp4"); err != nil {
		t.Fatalf("PrintQR: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 10 {
		t.Errorf("QR output has %d lines, want a full code", len(lines))
	}
}
