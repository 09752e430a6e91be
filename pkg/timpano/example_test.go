package timpano_test

import (
	"fmt"

	"github.com/BrandonKowalski/timpano/pkg/timpano"
	"github.com/veandco/go-sdl2/sdl"
)

// demoScreen is a minimal screen for the examples; real applications
// draw into the renderer and usually hold a WeakState back to app state.
type demoScreen struct {
	id string
}

func (s *demoScreen) ID() string           { return s.id }
func (s *demoScreen) Render(*sdl.Renderer) {}

// Example demonstrates the four stack operations on a stage that has not
// started its render loop yet.
func Example() {
	stage := timpano.NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	nav.Push(&demoScreen{id: "home"}, cx)
	nav.Push(&demoScreen{id: "settings"}, cx)
	fmt.Println(nav.Current().ID(), nav.Len(), nav.CanGoBack())

	nav.Replace(&demoScreen{id: "profile"}, cx)
	fmt.Println(nav.Current().ID(), nav.Len())

	nav.Pop(cx)
	fmt.Println(nav.Current().ID(), nav.CanGoBack())

	nav.ClearAndPush(&demoScreen{id: "login"}, cx)
	fmt.Println(nav.Current().ID(), nav.Len())

	// Output:
	// settings 2 true
	// profile 2
	// home false
	// login 1
}

// ExampleNavigator_Pop shows that popping an empty stack is a safe no-op.
func ExampleNavigator_Pop() {
	stage := timpano.NewStage()
	nav := stage.Navigator()
	cx := stage.Context()

	fmt.Println(nav.Pop(cx))

	nav.Push(&demoScreen{id: "home"}, cx)
	fmt.Println(nav.Pop(cx))
	fmt.Println(nav.Pop(cx))

	// Output:
	// false
	// true
	// false
}
