package timpano

// AppContext is the capability token required by every Navigator mutation.
// It carries the host's permission to change shared application state:
// marking the stage dirty so a re-render is scheduled, and moving screen
// ownership into and out of the stage's bookkeeping.
//
// Contexts are handed out by the owning Stage and passed explicitly
// through event handlers; there is no ambient global context.
type AppContext struct {
	notify  func()
	retain  func(Screen)
	release func(Screen)
}

// Notify tells the host that application state changed and the next frame
// must re-render. Every Navigator mutation calls this exactly once.
func (cx *AppContext) Notify() {
	if cx != nil && cx.notify != nil {
		cx.notify()
	}
}

// retainScreen records the host's strong reference to a screen entering
// the stack.
func (cx *AppContext) retainScreen(s Screen) {
	if cx != nil && cx.retain != nil {
		cx.retain(s)
	}
}

// releaseScreen gives up the host's strong reference to a screen leaving
// the stack. The screen stays alive until the stage's next collection
// point so an in-flight frame can still observe it.
func (cx *AppContext) releaseScreen(s Screen) {
	if cx != nil && cx.release != nil {
		cx.release(s)
	}
}
