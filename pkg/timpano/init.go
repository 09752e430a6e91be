// Package timpano provides screen-stack navigation for retained-mode SDL2
// applications on embedded Linux devices.
//
// A Stage owns a Navigator (the ordered history of full-page screens) and
// drives the event/render loop. Application event handlers mutate the
// stack through Push, Pop, Replace, and ClearAndPush, passing the stage's
// AppContext so every mutation schedules a re-render; each frame the stage
// draws whatever Current() returns, plus the navigation chrome.
package timpano

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/BrandonKowalski/timpano/pkg/timpano/internal"
)

// Options configures timpano initialization.
type Options struct {
	WindowTitle          string                    // Window title displayed in windowed mode
	ShowBackground       bool                      // Whether to render the theme background image
	WindowOptions        internal.WindowOptions    // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                    // Custom accent color for the navigation chrome
	FontPath             string                    // Path to the UI font used by the chrome
	Locale               string                    // BCP 47 tag for chrome strings (overridden by TIMPANO_LOCALE)
	LogPath              string                    // Full path for the log file including filename
	BackButton           internal.BackButtonConfig // Hardware back key read from evdev; zero value disables it
}

// Init initializes logging, theming, locale, the SDL subsystems, and the
// window. Must be called before Stage.Run.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme()
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	locale := options.Locale
	if env := os.Getenv(constants.LocaleEnvVar); env != "" {
		locale = env
	}
	internal.SetLocale(locale)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, options.BackButton)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
