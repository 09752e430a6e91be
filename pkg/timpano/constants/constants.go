// Package constants defines shared constants and types used throughout
// the timpano navigation framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// LocaleEnvVar overrides the chrome locale (e.g. "it", "en-US").
const LocaleEnvVar = "TIMPANO_LOCALE"

// BackgroundPathEnvVar is the environment variable name for a custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction lets timpano dispatch the same navigation input whether it
// came from a keyboard, a game controller, or a dedicated hardware key.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond  // Debounce delay between input events
	DefaultBackButtonCoolDown  = 250 * time.Millisecond // Minimum gap between hardware back presses
	DefaultFrameDelay          = 16 * time.Millisecond  // Frame pacing when VSync is unavailable
	DefaultHeaderHeight  int32 = 56                     // Height of the chrome header bar
)
