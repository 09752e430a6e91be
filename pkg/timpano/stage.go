package timpano

import (
	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/BrandonKowalski/timpano/pkg/timpano/internal"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Stage is the host side of navigation: it owns the Navigator, hands out
// the mutation context, drives the event/render loop, and destroys
// screens after they leave the stack.
//
// Navigator mutations happen only on the goroutine running Run. The
// hardware back-button watcher runs elsewhere and communicates through
// the backRequested flag; it never touches the stack itself.
type Stage struct {
	nav *Navigator
	cx  *AppContext

	dirty         atomic.Bool // a mutation happened; render next frame
	backRequested atomic.Bool // set by the back-button watcher goroutine

	retired     []Screen // released screens awaiting end-of-frame destruction
	liveScreens int
	stopped     bool
}

// NewStage creates a stage with an empty navigator. Init must have run
// before calling Run, but a stage itself needs no SDL state, so screens
// can be pushed before the loop starts.
func NewStage() *Stage {
	s := &Stage{nav: NewNavigator()}
	s.cx = &AppContext{
		notify:  s.markDirty,
		retain:  s.retain,
		release: s.retire,
	}
	return s
}

// Navigator returns the stage's navigation stack.
func (s *Stage) Navigator() *Navigator {
	return s.nav
}

// Context returns the mutation context to pass into Navigator operations
// from event handlers.
func (s *Stage) Context() *AppContext {
	return s.cx
}

// Stop ends the Run loop after the current frame.
func (s *Stage) Stop() {
	s.stopped = true
}

func (s *Stage) markDirty() {
	s.dirty.Store(true)
}

func (s *Stage) retain(Screen) {
	s.liveScreens++
}

func (s *Stage) retire(screen Screen) {
	s.liveScreens--
	s.retired = append(s.retired, screen)
}

// collect destroys retired screens. Runs after the frame that observed
// their removal has presented, so a screen is never destroyed while the
// renderer might still draw it.
func (s *Stage) collect() {
	if len(s.retired) == 0 {
		return
	}
	for _, screen := range s.retired {
		if d, ok := screen.(Destroyer); ok {
			d.Destroy()
		}
	}
	internal.GetInternalLogger().Debug("Collected retired screens", "count", len(s.retired), "live", s.liveScreens)
	s.retired = s.retired[:0]
}

// Run drives the stage loop: poll input, apply any pending back press,
// render when a mutation marked the stage dirty, then collect retired
// screens. Returns when the window is closed, Stop is called, or the
// user backs out of the root screen.
func (s *Stage) Run() error {
	win := internal.GetWindow()
	if win == nil {
		return ErrNotInitialized
	}

	if bbc := internal.GetBackButtonConfig(); !bbc.IsZero() && !constants.IsDevMode() {
		stop := internal.StartBackButtonWatcher(bbc, func() {
			s.backRequested.Store(true)
		})
		defer stop()
	}

	s.dirty.Store(true)

	for !s.stopped {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				s.stopped = true
			default:
				if button, ok := internal.MapEvent(event); ok {
					s.handleButton(button)
				}
			}
		}

		if s.backRequested.Swap(false) {
			s.goBack()
		}

		if s.dirty.Swap(false) {
			s.renderFrame(win)
		} else {
			sdl.Delay(uint32(constants.DefaultFrameDelay.Milliseconds()))
		}

		s.collect()
	}

	return nil
}

// handleButton offers the press to the topmost screen first; unhandled B
// presses get the default back behavior.
func (s *Stage) handleButton(button constants.VirtualButton) {
	if current := s.nav.Current(); current != nil {
		if h, ok := current.(InputHandler); ok && h.HandleButton(button, s.cx) {
			return
		}
	}

	if button == constants.VirtualButtonB {
		s.goBack()
	}
}

// goBack pops when that still leaves a screen visible; backing out of
// the root screen stops the stage instead of emptying the stack.
func (s *Stage) goBack() {
	if s.nav.CanGoBack() {
		s.nav.Pop(s.cx)
		return
	}
	s.stopped = true
}

func (s *Stage) renderFrame(win *internal.Window) {
	renderer := win.Renderer
	theme := internal.GetTheme()

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	if win.DisplayBackground {
		win.RenderBackground()
	}

	if current := s.nav.Current(); current != nil {
		current.Render(renderer)
		internal.DrawHeader(win, current.ID(), s.nav.CanGoBack())
	} else {
		internal.DrawPlaceholder(win)
	}

	win.Present()
}
