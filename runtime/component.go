package runtime

import "github.com/vcrobe/nojs-classroom/vdom"

// Component interface defines the structure for all components in the framework.
// The Render method accepts the Renderer interface (not concrete type) so both the
// engine and the in-memory test renderer can drive it.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// It must not change state; the renderer parameter provides RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() and state slot updates to reach the engine.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that create their state slots
// before the first render. OnInit runs once per instance.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that want a hook before
// every render, after props were applied.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// PropUpdater is implemented by child components whose props can be refreshed
// in place. The renderer calls ApplyProps on the preserved instance with the
// freshly constructed one so local state survives a parent re-render.
type PropUpdater interface {
	ApplyProps(next Component)
}

// Cleaner is implemented by components that release resources when they
// leave the tree.
type Cleaner interface {
	OnDestroy()
}
