package runtime

import (
	"time"

	"github.com/vcrobe/nojs-classroom/vdom"
)

// Renderer defines the minimal set of runtime operations used by component Render() code.
type Renderer interface {
	// RenderChild is used by components to render child components.
	// The key parameter uniquely identifies the component instance for state preservation.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// RequestUpdate records a state slot change and schedules a re-render.
	RequestUpdate(u Update)

	// Rendering reports whether a Render call is in progress. State writes
	// are rejected while it is.
	Rendering() bool
}

// Update describes one state slot change.
type Update struct {
	Slot  string
	Value any
}

// Surface is the display side of the hosting engine. It receives the first
// tree in full and afterwards only the patches between consecutive trees.
type Surface interface {
	Mount(tree *vdom.VNode) error
	Patch(tree *vdom.VNode, patches []vdom.Patch) error
}

// Observer receives engine activity, for metrics and tracing.
type Observer interface {
	RenderCompleted(component string, elapsed time.Duration, patches int)
	EventHandled(ev Event, err error)
	StateUpdated(u Update)
}

type nopObserver struct{}

func (nopObserver) RenderCompleted(string, time.Duration, int) {}
func (nopObserver) EventHandled(Event, error) {}
func (nopObserver) StateUpdated(Update) {}
