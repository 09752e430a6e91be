package timpano

import (
	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Screen is a full-page view that can be placed on the navigation stack.
//
// A screen must be fully constructed and renderable before it is handed to
// the Navigator; the Navigator never builds or initializes screens itself.
type Screen interface {
	// ID returns a stable identifier for this screen. It is used for
	// history tracking and logging only and has no effect on navigation.
	ID() string

	// Render draws the full page. Called once per frame while this screen
	// is topmost on the stack.
	Render(renderer *sdl.Renderer)
}

// EnterObserver is implemented by screens that want to know when they
// become the current screen via Push, Replace, or ClearAndPush.
type EnterObserver interface {
	OnEnter(cx *AppContext)
}

// ExitObserver is implemented by screens that want to know when they are
// removed from the stack. Called before the Navigator releases ownership.
type ExitObserver interface {
	OnExit(cx *AppContext)
}

// Destroyer is implemented by screens holding SDL textures or other
// resources that need explicit release. Destroy runs at the stage's
// end-of-frame collection point after the screen leaves the stack,
// never in the middle of a frame that might still draw it.
type Destroyer interface {
	Destroy()
}

// InputHandler is implemented by screens that consume input. The topmost
// screen receives each mapped button press; returning false hands the
// press to the stage's default handling (B pops the stack).
type InputHandler interface {
	HandleButton(button constants.VirtualButton, cx *AppContext) bool
}
