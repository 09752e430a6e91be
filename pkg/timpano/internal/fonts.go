package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

const (
	titleFontSize = 28
	hintFontSize  = 20
)

var (
	titleFont *ttf.Font
	hintFont  *ttf.Font
)

// initFonts opens the theme font at the sizes the chrome needs.
// Text rendering is skipped entirely when the font cannot be opened,
// so a missing font file degrades the chrome rather than failing Init.
func initFonts() {
	path := GetTheme().FontPath
	if path == "" {
		return
	}

	var err error
	titleFont, err = ttf.OpenFont(path, titleFontSize)
	if err != nil {
		GetInternalLogger().Warn("Failed to open theme font", "path", path, "error", err)
		titleFont = nil
		return
	}

	hintFont, err = ttf.OpenFont(path, hintFontSize)
	if err != nil {
		hintFont = titleFont
	}
}

// TitleFont returns the header title font, or nil when no font is available.
func TitleFont() *ttf.Font {
	return titleFont
}

// HintFont returns the smaller hint font, or nil when no font is available.
func HintFont() *ttf.Font {
	return hintFont
}

func closeFonts() {
	if hintFont != nil && hintFont != titleFont {
		hintFont.Close()
	}
	if titleFont != nil {
		titleFont.Close()
	}
	titleFont = nil
	hintFont = nil
}
