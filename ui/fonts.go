package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// systemFonts are tried in order after an explicitly configured path. The
// symbol fonts come first since the toggle button label is a pictograph.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansSymbols2-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansSymbols2-Regular.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"C:\\Windows\\Fonts\\seguisym.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// fontCandidates returns the paths LoadFont tries, preferred first.
func fontCandidates(preferred string) []string {
	if preferred == "" {
		return systemFonts
	}
	return append([]string{preferred}, systemFonts...)
}

// LoadFont opens the first usable font among preferred and the platform
// fallbacks at the given point size. TTF is initialised on first use.
func LoadFont(preferred string, size int) (*ttf.Font, error) {
	if !ttf.WasInit() {
		if err := ttf.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize TTF: %v", err)
		}
	}

	var lastErr error
	for _, path := range fontCandidates(preferred) {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no usable font found: %v", lastErr)
}
