package timpano

import (
	"testing"

	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// ctxRecorder tracks what the navigator asked the host to do.
type ctxRecorder struct {
	notifies int
	retained []string
	released []string
}

func newTestContext(rec *ctxRecorder) *AppContext {
	return &AppContext{
		notify:  func() { rec.notifies++ },
		retain:  func(s Screen) { rec.retained = append(rec.retained, s.ID()) },
		release: func(s Screen) { rec.released = append(rec.released, s.ID()) },
	}
}

// stubScreen implements every optional capability and counts the calls.
type stubScreen struct {
	id        string
	entered   int
	exited    int
	destroyed int
}

func (s *stubScreen) ID() string          { return s.id }
func (s *stubScreen) Render(*sdl.Renderer) {}
func (s *stubScreen) OnEnter(*AppContext) { s.entered++ }
func (s *stubScreen) OnExit(*AppContext)  { s.exited++ }
func (s *stubScreen) Destroy()            { s.destroyed++ }

// plainScreen implements only the required Screen interface.
type plainScreen struct {
	id string
}

func (s *plainScreen) ID() string          { return s.id }
func (s *plainScreen) Render(*sdl.Renderer) {}

func TestNewNavigator(t *testing.T) {
	nav := NewNavigator()

	assert.Equal(t, 0, nav.Len())
	assert.True(t, nav.IsEmpty())
	assert.Nil(t, nav.Current())
	assert.False(t, nav.CanGoBack())
	assert.Empty(t, nav.History())
}

func TestNavigator_Push(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	home := &stubScreen{id: "home"}
	nav.Push(home, cx)

	assert.Equal(t, 1, nav.Len())
	require.NotNil(t, nav.Current())
	assert.Equal(t, "home", nav.Current().ID())
	assert.False(t, nav.CanGoBack())
	assert.Equal(t, 1, rec.notifies)
	assert.Equal(t, []string{"home"}, rec.retained)
	assert.Equal(t, 1, home.entered)
}

func TestNavigator_PushPop(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	nav.Push(&stubScreen{id: "home"}, cx)
	settings := &stubScreen{id: "settings"}
	nav.Push(settings, cx)

	assert.Equal(t, 2, nav.Len())
	assert.Equal(t, "settings", nav.Current().ID())
	assert.True(t, nav.CanGoBack())

	require.True(t, nav.Pop(cx))

	assert.Equal(t, 1, nav.Len())
	assert.Equal(t, "home", nav.Current().ID())
	assert.False(t, nav.CanGoBack())
	assert.Equal(t, 1, settings.exited)
	assert.Equal(t, []string{"settings"}, rec.released)
	assert.Equal(t, 3, rec.notifies) // two pushes, one pop
}

func TestNavigator_PopEmptyIsIdempotent(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	for i := 0; i < 5; i++ {
		assert.False(t, nav.Pop(cx))
	}

	assert.Equal(t, 0, nav.Len())
	assert.Equal(t, 0, rec.notifies, "a no-op pop must not request a re-render")
	assert.Empty(t, rec.released)
}

func TestNavigator_PopToEmpty(t *testing.T) {
	nav := NewNavigator()
	cx := newTestContext(&ctxRecorder{})

	nav.Push(&stubScreen{id: "home"}, cx)

	require.True(t, nav.Pop(cx))
	assert.Equal(t, 0, nav.Len())
	assert.Nil(t, nav.Current())
	assert.False(t, nav.Pop(cx))
}

func TestNavigator_Replace(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	nav.Push(&stubScreen{id: "home"}, cx)
	settings := &stubScreen{id: "settings"}
	nav.Push(settings, cx)

	login := &stubScreen{id: "login"}
	replaced := nav.Replace(login, cx)

	assert.True(t, replaced)
	assert.Equal(t, 2, nav.Len())
	assert.Equal(t, "login", nav.Current().ID())
	assert.Equal(t, 1, settings.exited)
	assert.Equal(t, 1, login.entered)
	assert.Equal(t, []string{"settings"}, rec.released)
	assert.Equal(t, []string{"home", "settings", "login"}, rec.retained)
	assert.Equal(t, 3, rec.notifies)
	assert.Equal(t, []string{"home", "login"}, nav.History())
}

func TestNavigator_ReplaceOnEmptyStack(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	login := &stubScreen{id: "login"}
	replaced := nav.Replace(login, cx)

	assert.False(t, replaced, "nothing was replaced on an empty stack")
	assert.Equal(t, 1, nav.Len())
	assert.Equal(t, "login", nav.Current().ID())
	assert.Equal(t, 1, rec.notifies)
	assert.Empty(t, rec.released)
}

func TestNavigator_ClearAndPush(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	nav.Push(&stubScreen{id: "home"}, cx)
	nav.Push(&stubScreen{id: "profile"}, cx)
	nav.Push(&stubScreen{id: "settings"}, cx)
	rec.notifies = 0
	rec.released = nil

	login := &stubScreen{id: "login"}
	nav.ClearAndPush(login, cx)

	assert.Equal(t, 1, nav.Len())
	assert.Equal(t, "login", nav.Current().ID())
	assert.False(t, nav.CanGoBack())
	assert.Equal(t, []string{"settings", "profile", "home"}, rec.released, "entries release top-down")
	assert.Equal(t, 1, rec.notifies, "clear-and-push is one mutation, one notification")
	assert.Equal(t, 1, login.entered)
}

func TestNavigator_LenAccounting(t *testing.T) {
	nav := NewNavigator()
	cx := newTestContext(&ctxRecorder{})

	nav.Push(&stubScreen{id: "a"}, cx)
	nav.Push(&stubScreen{id: "b"}, cx)
	nav.Replace(&stubScreen{id: "c"}, cx) // replace does not change length
	assert.Equal(t, 2, nav.Len())

	nav.Pop(cx)
	nav.Pop(cx)
	nav.Pop(cx) // no-op on empty
	assert.Equal(t, 0, nav.Len())

	nav.Push(&stubScreen{id: "d"}, cx)
	nav.Push(&stubScreen{id: "e"}, cx)
	nav.ClearAndPush(&stubScreen{id: "f"}, cx) // resets the baseline to 1
	assert.Equal(t, 1, nav.Len())
}

func TestNavigator_History(t *testing.T) {
	nav := NewNavigator()
	cx := newTestContext(&ctxRecorder{})

	nav.Push(&stubScreen{id: "home"}, cx)
	nav.Push(&stubScreen{id: "profile"}, cx)
	nav.Push(&stubScreen{id: "settings"}, cx)

	assert.Equal(t, []string{"home", "profile", "settings"}, nav.History())

	nav.Pop(cx)
	assert.Equal(t, []string{"home", "profile"}, nav.History())
}

func TestNavigator_PlainScreenWithoutHooks(t *testing.T) {
	nav := NewNavigator()
	rec := &ctxRecorder{}
	cx := newTestContext(rec)

	nav.Push(&plainScreen{id: "about"}, cx)
	require.True(t, nav.Pop(cx))

	assert.Equal(t, []string{"about"}, rec.released)
	assert.Equal(t, 2, rec.notifies)
}

func TestNavigator_DuplicateIDsAllowed(t *testing.T) {
	nav := NewNavigator()
	cx := newTestContext(&ctxRecorder{})

	nav.Push(&stubScreen{id: "detail"}, cx)
	nav.Push(&stubScreen{id: "detail"}, cx)

	assert.Equal(t, 2, nav.Len())
	assert.Equal(t, []string{"detail", "detail"}, nav.History())
}

func TestStage_CollectDestroysRetiredScreens(t *testing.T) {
	stage := NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	home := &stubScreen{id: "home"}
	settings := &stubScreen{id: "settings"}
	nav.Push(home, cx)
	nav.Push(settings, cx)

	require.True(t, nav.Pop(cx))
	assert.Equal(t, 0, settings.destroyed, "screens survive until the collection point")

	stage.collect()
	assert.Equal(t, 1, settings.destroyed)
	assert.Equal(t, 0, home.destroyed, "screens still on the stack are not destroyed")
}

func TestStage_MutationsMarkDirty(t *testing.T) {
	stage := NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	assert.False(t, stage.dirty.Load())

	nav.Push(&stubScreen{id: "home"}, cx)
	assert.True(t, stage.dirty.Swap(false))

	require.True(t, nav.Pop(cx))
	assert.True(t, stage.dirty.Swap(false), "pop of a non-empty stack re-renders")

	require.False(t, nav.Pop(cx)) // empty now; no-op
	assert.False(t, stage.dirty.Load(), "a no-op pop must not schedule a frame")
}

func TestStage_GoBack(t *testing.T) {
	stage := NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	nav.Push(&stubScreen{id: "home"}, cx)
	nav.Push(&stubScreen{id: "settings"}, cx)

	stage.goBack()
	assert.Equal(t, "home", nav.Current().ID())
	assert.False(t, stage.stopped)

	stage.goBack()
	assert.Equal(t, 1, nav.Len(), "backing out of the root keeps it visible")
	assert.True(t, stage.stopped)
}

// consumingScreen swallows every button press.
type consumingScreen struct {
	stubScreen
	presses []constants.VirtualButton
}

func (s *consumingScreen) HandleButton(button constants.VirtualButton, _ *AppContext) bool {
	s.presses = append(s.presses, button)
	return true
}

func TestStage_HandleButton(t *testing.T) {
	stage := NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	nav.Push(&stubScreen{id: "home"}, cx)
	consumer := &consumingScreen{stubScreen: stubScreen{id: "settings"}}
	nav.Push(consumer, cx)

	stage.handleButton(constants.VirtualButtonB)
	assert.Equal(t, 2, nav.Len(), "a consumed B press does not pop")
	assert.Equal(t, []constants.VirtualButton{constants.VirtualButtonB}, consumer.presses)

	require.True(t, nav.Pop(cx))
	stage.handleButton(constants.VirtualButtonB)
	assert.Equal(t, 1, nav.Len(), "B on the root stops instead of popping")
	assert.True(t, stage.stopped)
}
