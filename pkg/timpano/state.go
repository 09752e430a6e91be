package timpano

// StateCell is the host-owned box for shared application state. Screens
// never hold the state directly; they hold a WeakState obtained from
// Downgrade, so destroying the owner invalidates every outstanding
// reference deterministically.
type StateCell[T any] struct {
	value    *T
	released bool
}

// NewStateCell creates a cell owning the given state.
func NewStateCell[T any](value *T) *StateCell[T] {
	return &StateCell[T]{value: value}
}

// Get returns the owned state, or nil after Release.
func (c *StateCell[T]) Get() *T {
	if c.released {
		return nil
	}
	return c.value
}

// Downgrade returns a non-owning reference to the state.
func (c *StateCell[T]) Downgrade() WeakState[T] {
	return WeakState[T]{cell: c}
}

// Release invalidates the cell and every WeakState derived from it.
// Call when the owner is torn down; Get and Upgrade fail afterwards.
func (c *StateCell[T]) Release() {
	c.released = true
	c.value = nil
}

// WeakState is a non-owning reference to shared application state.
// Screens keep one of these to call back into the navigator without
// keeping the state alive past its owner.
type WeakState[T any] struct {
	cell *StateCell[T]
}

// Upgrade returns the state if its owner is still alive.
func (w WeakState[T]) Upgrade() (*T, bool) {
	if w.cell == nil || w.cell.released {
		return nil, false
	}
	return w.cell.value, true
}

// Update runs f against the state when the owner is still alive,
// passing the mutation context through. Returns false if the state is
// gone, in which case f does not run.
func (w WeakState[T]) Update(cx *AppContext, f func(*T, *AppContext)) bool {
	state, ok := w.Upgrade()
	if !ok {
		return false
	}
	f(state, cx)
	return true
}
