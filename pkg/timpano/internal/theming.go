package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the navigation chrome.
type Theme struct {
	BackgroundColor     sdl.Color // Cleared behind every frame
	TextColor           sdl.Color // Header title text
	AccentColor         sdl.Color // Header bar background
	HintColor           sdl.Color // Placeholder text on an empty stack
	FontPath            string    // Path to the UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the built-in dark theme used when the host
// application does not install its own.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x1A1A1A),
		TextColor:       HexToColor(0xFFFFFF),
		AccentColor:     HexToColor(0x2D2D44),
		HintColor:       HexToColor(0x9A9A9A),
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
