// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without a hosting engine or surface.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged() or state slot updates
// - Inspect the resulting VDOM tree and the updates that were requested
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	children    map[string]runtime.Component
	initialized map[string]bool
	updates     []runtime.Update
	renders     int
	rendering   bool
	preparing   bool
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component:   comp,
		children:    make(map[string]runtime.Component),
		initialized: make(map[string]bool),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// This should be called at the start of a test to get the initial VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	if r.rendering || r.preparing {
		return
	}
	r.init("__root__", r.component)
	r.rendering = true
	r.currentVDOM = r.component.Render(r)
	r.rendering = false
	r.renders++
}

// RequestUpdate records the slot change and re-renders. Changes made while
// rendering are dropped.
func (r *TestRenderer) RequestUpdate(u runtime.Update) {
	if r.rendering {
		return
	}
	r.updates = append(r.updates, u)
	r.ReRender()
}

// Rendering reports whether a component Render call is running.
func (r *TestRenderer) Rendering() bool {
	return r.rendering
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Updates returns every slot update requested so far, in order.
func (r *TestRenderer) Updates() []runtime.Update {
	return r.updates
}

// Renders returns how many times the root was rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild keeps one instance per key so child state survives re-renders.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance, ok := r.children[key]
	if !ok {
		instance = child
		r.children[key] = child
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(child)
	}
	instance.SetRenderer(r)
	r.init(key, instance)
	return instance.Render(r)
}

// Child returns the preserved instance rendered under key.
func (r *TestRenderer) Child(key string) runtime.Component {
	return r.children[key]
}

func (r *TestRenderer) init(key string, c runtime.Component) {
	if r.initialized[key] {
		return
	}
	r.initialized[key] = true

	wasRendering := r.rendering
	r.rendering, r.preparing = false, true
	defer func() { r.rendering, r.preparing = wasRendering, false }()
	if initializer, ok := c.(runtime.Initializer); ok {
		initializer.OnInit()
	}
}

// Fire invokes the handler bound to event on the node at path in the current
// tree. It reports false if there is no such node or handler.
func (r *TestRenderer) Fire(path vdom.Path, event, value string) bool {
	n := vdom.Find(r.currentVDOM, path)
	if n == nil {
		return false
	}
	h, ok := n.Events[event]
	if !ok {
		return false
	}
	h(value)
	return true
}

// ClickButton clicks the first button labelled label in the current tree.
func (r *TestRenderer) ClickButton(label string) bool {
	p, n := vdom.FindButton(r.currentVDOM, label)
	if n == nil {
		return false
	}
	return r.Fire(p, "click", "")
}
