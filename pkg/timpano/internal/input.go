package internal

import (
	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// MapEvent translates an SDL input event into a virtual button press.
// Only press events map; releases, key repeats, and unmapped inputs
// return (VirtualButtonUnassigned, false).
func MapEvent(event sdl.Event) (constants.VirtualButton, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return constants.VirtualButtonUnassigned, false
		}
		return mapKey(e.Keysym.Sym)

	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return constants.VirtualButtonUnassigned, false
		}
		return mapControllerButton(sdl.GameControllerButton(e.Button))
	}

	return constants.VirtualButtonUnassigned, false
}

// mapKey covers the development-mode keyboard bindings.
func mapKey(sym sdl.Keycode) (constants.VirtualButton, bool) {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp, true
	case sdl.K_DOWN:
		return constants.VirtualButtonDown, true
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft, true
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight, true
	case sdl.K_RETURN:
		return constants.VirtualButtonA, true
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.VirtualButtonB, true
	case sdl.K_x:
		return constants.VirtualButtonX, true
	case sdl.K_y:
		return constants.VirtualButtonY, true
	case sdl.K_m:
		return constants.VirtualButtonMenu, true
	}
	return constants.VirtualButtonUnassigned, false
}

func mapControllerButton(button sdl.GameControllerButton) (constants.VirtualButton, bool) {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp, true
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown, true
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft, true
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight, true
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA, true
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB, true
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX, true
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY, true
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart, true
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu, true
	}
	return constants.VirtualButtonUnassigned, false
}
