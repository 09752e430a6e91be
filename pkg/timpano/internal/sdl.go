package internal

import (
	"os"

	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window           *Window
	backButtonConfig BackButtonConfig
)

func Init(title string, showBackground bool, winOpts WindowOptions, bbc BackButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | img.INIT_PNG |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts()

	backButtonConfig = bbc
}

// GetBackButtonConfig returns the hardware back-button configuration
// supplied at Init time. The zero value disables the watcher.
func GetBackButtonConfig() BackButtonConfig {
	return backButtonConfig
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	destroyChromeCache()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
