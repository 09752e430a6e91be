package timpano

import (
	"github.com/BrandonKowalski/timpano/pkg/timpano/internal"
)

// screenHandle is a single entry in the navigation stack: the screen and
// the identifier it declared when it was pushed.
type screenHandle struct {
	id     string
	screen Screen
}

// Navigator owns the ordered history of screens and is the sole mutation
// surface for it. The last entry is the current, visible screen.
//
// All methods must be called from the UI thread; the Navigator does no
// locking of its own.
type Navigator struct {
	stack []screenHandle
}

// NewNavigator creates an empty navigator. An empty stack is legal and
// means there is nothing to render yet.
func NewNavigator() *Navigator {
	return &Navigator{
		stack: make([]screenHandle, 0),
	}
}

// Push appends a screen to the top of the stack and makes it current.
// The screen must be fully constructed. Push always succeeds.
func (n *Navigator) Push(screen Screen, cx *AppContext) {
	id := screen.ID()
	for _, h := range n.stack {
		if h.id == id {
			internal.GetInternalLogger().Warn("Duplicate screen id on stack", "id", id)
			break
		}
	}

	n.stack = append(n.stack, screenHandle{id: id, screen: screen})
	cx.retainScreen(screen)

	if obs, ok := screen.(EnterObserver); ok {
		obs.OnEnter(cx)
	}

	internal.GetInternalLogger().Debug("Screen pushed", "id", id, "depth", len(n.stack))
	cx.Notify()
}

// Pop removes the current screen, making the one below it current.
// Returns false if the stack was already empty; that is a safe no-op and
// no re-render is requested.
func (n *Navigator) Pop(cx *AppContext) bool {
	if len(n.stack) == 0 {
		return false
	}

	top := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]

	if obs, ok := top.screen.(ExitObserver); ok {
		obs.OnExit(cx)
	}
	cx.releaseScreen(top.screen)

	internal.GetInternalLogger().Debug("Screen popped", "id", top.id, "depth", len(n.stack))
	cx.Notify()
	return true
}

// Replace swaps the current screen for a new one; the stack depth does
// not change. On an empty stack the screen is simply pushed and Replace
// returns false, meaning there was nothing to replace.
func (n *Navigator) Replace(screen Screen, cx *AppContext) bool {
	if len(n.stack) == 0 {
		n.Push(screen, cx)
		return false
	}

	old := n.stack[len(n.stack)-1]
	n.stack[len(n.stack)-1] = screenHandle{id: screen.ID(), screen: screen}

	if obs, ok := old.screen.(ExitObserver); ok {
		obs.OnExit(cx)
	}
	cx.releaseScreen(old.screen)

	cx.retainScreen(screen)
	if obs, ok := screen.(EnterObserver); ok {
		obs.OnEnter(cx)
	}

	internal.GetInternalLogger().Debug("Screen replaced", "old_id", old.id, "id", screen.ID(), "depth", len(n.stack))
	cx.Notify()
	return true
}

// ClearAndPush releases every screen on the stack, then pushes a new
// root. Prior history is unreachable afterwards, which is the behavior
// wanted at authentication boundaries (logout, session expiry).
func (n *Navigator) ClearAndPush(screen Screen, cx *AppContext) {
	for i := len(n.stack) - 1; i >= 0; i-- {
		h := n.stack[i]
		if obs, ok := h.screen.(ExitObserver); ok {
			obs.OnExit(cx)
		}
		cx.releaseScreen(h.screen)
	}
	n.stack = n.stack[:0]

	internal.GetInternalLogger().Debug("Stack cleared")
	n.Push(screen, cx)
}

// Current returns the topmost screen, or nil when the stack is empty.
// The rendering layer must treat nil as "render nothing".
func (n *Navigator) Current() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1].screen
}

// CanGoBack returns true if a Pop would still leave a screen visible,
// i.e. the stack holds more than one entry.
func (n *Navigator) CanGoBack() bool {
	return len(n.stack) > 1
}

// Len returns the current stack depth.
func (n *Navigator) Len() int {
	return len(n.stack)
}

// IsEmpty returns true if the stack has no entries.
func (n *Navigator) IsEmpty() bool {
	return len(n.stack) == 0
}

// History returns the stack's screen identifiers, bottom first.
// Intended for diagnostics; the slice is a copy.
func (n *Navigator) History() []string {
	ids := make([]string, len(n.stack))
	for i, h := range n.stack {
		ids[i] = h.id
	}
	return ids
}
