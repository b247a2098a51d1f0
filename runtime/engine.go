package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vcrobe/nojs-classroom/vdom"
)

// Compile-time assertion to ensure Engine implements the Renderer interface.
var _ Renderer = (*Engine)(nil)

const rootKey = "__root__"

// Engine is the hosting render engine. It manages the component instance
// tree, processes events one at a time, and hands the differences between
// consecutive trees to its Surface.
//
// Engine is not safe for concurrent use. Use a Loop to drive it from
// several goroutines.
type Engine struct {
	instances   map[string]Component
	initialized map[string]bool // Track which components have been initialized
	activeKeys  map[string]bool // Track which components are active in the current render
	root        Component
	rootName    string
	prevVDOM    *vdom.VNode // Previous VDOM tree for patching

	surface  Surface
	observer Observer
	logger   *slog.Logger

	queue       []Event
	dispatching bool
	rendering   bool
	preparing   bool
	dirty       bool
	renders     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSurface sets the display sink. Without one, trees are kept in memory only.
func WithSurface(s Surface) Option {
	return func(e *Engine) { e.surface = s }
}

// WithObserver registers an activity observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a new engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		observer:    nopObserver{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mount replaces the root component and renders it from scratch.
func (e *Engine) Mount(root Component) *vdom.VNode {
	if e.root != nil {
		e.destroyAll()
	}
	e.root = root
	e.rootName = fmt.Sprintf("%T", root)
	e.prevVDOM = nil
	e.queue = nil
	e.logger.Debug("mount", "component", e.rootName)
	return e.Render()
}

// Render runs one render cycle of the root component and pushes the result
// to the surface.
func (e *Engine) Render() *vdom.VNode {
	if e.root == nil {
		return nil
	}
	start := time.Now()

	// Reset activeKeys for this render cycle
	e.activeKeys = make(map[string]bool)
	e.dirty = false

	e.prepare(rootKey, e.root)
	e.rendering = true
	newVDOM := e.root.Render(e)
	e.rendering = false

	patches := 0
	if e.prevVDOM == nil {
		if e.surface != nil {
			if err := e.surface.Mount(newVDOM); err != nil {
				e.logger.Error("surface mount failed", "component", e.rootName, "error", err)
			}
		}
	} else {
		diff := vdom.Diff(e.prevVDOM, newVDOM)
		patches = len(diff)
		if e.surface != nil && len(diff) > 0 {
			if err := e.surface.Patch(newVDOM, diff); err != nil {
				e.logger.Error("surface patch failed", "component", e.rootName, "error", err)
			}
		}
	}

	// Store the new VDOM tree for the next render cycle
	e.prevVDOM = newVDOM
	e.renders++

	// Clean up components that were not rendered in this cycle
	e.cleanupUnmountedComponents()

	elapsed := time.Since(start)
	e.observer.RenderCompleted(e.rootName, elapsed, patches)
	e.logger.Debug("render", "component", e.rootName, "render", e.renders, "patches", patches, "elapsed", elapsed)
	return newVDOM
}

// RenderChild renders a child component. The first time a key is seen the
// given instance is kept; afterwards the kept instance is reused and, if it
// implements PropUpdater, receives the new props.
func (e *Engine) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	e.activeKeys[key] = true

	instance, exists := e.instances[key]
	if !exists {
		instance = childWithProps
		e.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		updater.ApplyProps(childWithProps)
	}

	e.prepare(key, instance)
	return instance.Render(e)
}

// prepare attaches the renderer and runs lifecycle hooks before Render.
// Hooks may write state: the writes are kept and shown by the render that
// follows, so they do not schedule another one.
func (e *Engine) prepare(key string, c Component) {
	c.SetRenderer(e)

	wasRendering := e.rendering
	e.rendering, e.preparing = false, true
	defer func() { e.rendering, e.preparing = wasRendering, false }()

	// Call OnInit only once, before first render
	if !e.initialized[key] {
		if initializer, ok := c.(Initializer); ok {
			e.callOnInit(initializer, key)
		}
		e.initialized[key] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if receiver, ok := c.(ParameterReceiver); ok {
		e.callOnPropertiesSet(receiver, key)
	}
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (e *Engine) cleanupUnmountedComponents() {
	for key, instance := range e.instances {
		if !e.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				e.callOnDestroy(cleaner, key)
			}
			delete(e.instances, key)
			delete(e.initialized, key)
		}
	}
}

func (e *Engine) destroyAll() {
	for key, instance := range e.instances {
		if cleaner, ok := instance.(Cleaner); ok {
			e.callOnDestroy(cleaner, key)
		}
	}
	if cleaner, ok := e.root.(Cleaner); ok {
		e.callOnDestroy(cleaner, rootKey)
	}
	e.instances = make(map[string]Component)
	e.initialized = make(map[string]bool)
}

// ReRender schedules a render. Inside an event handler the render is
// deferred until the handler returns, so a handler that changes several
// slots still produces a single render.
func (e *Engine) ReRender() {
	switch {
	case e.rendering:
		e.logger.Warn("state changed during render; ignored", "component", e.rootName)
	case e.preparing:
		// The render about to run shows the change.
	case e.dispatching:
		e.dirty = true
	default:
		e.Render()
	}
}

// RequestUpdate records a slot change and schedules a render. During Render
// the change is refused; State.Set has not stored it either.
func (e *Engine) RequestUpdate(u Update) {
	if e.rendering {
		e.logger.Warn("state changed during render; ignored", "component", e.rootName, "slot", u.Slot)
		return
	}
	e.observer.StateUpdated(u)
	e.logger.Debug("state update", "component", e.rootName, "slot", u.Slot, "value", u.Value)
	e.ReRender()
}

// Rendering reports whether a component Render call is running.
func (e *Engine) Rendering() bool {
	return e.rendering
}

// Dispatch queues ev and, unless another event is already being handled,
// drains the queue: each event runs to completion and is followed by at most
// one render before the next one is taken. Events dispatched from inside a
// handler are queued behind it and Dispatch returns nil for them.
//
// The returned error belongs to ev when it was handled by this call.
func (e *Engine) Dispatch(ev Event) error {
	if e.root == nil {
		return ErrNotMounted
	}
	e.queue = append(e.queue, ev)
	if e.dispatching {
		return nil
	}

	e.dispatching = true
	defer func() { e.dispatching = false }()

	var first error
	for i := 0; len(e.queue) > 0; i++ {
		next := e.queue[0]
		e.queue = e.queue[1:]

		err := e.handle(next)
		e.observer.EventHandled(next, err)
		if err != nil {
			e.logger.Warn("event dropped", "component", e.rootName, "event", next.String(), "error", err)
			if i == 0 {
				first = err
			}
		}

		if e.dirty {
			e.dirty = false
			e.Render()
		}
	}
	return first
}

func (e *Engine) handle(ev Event) error {
	node := vdom.Find(e.prevVDOM, ev.Target)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrNoTarget, ev.Target.String())
	}
	h, ok := node.Events[ev.Type]
	if !ok {
		return fmt.Errorf("%w: %s on <%s> at %q", ErrNoHandler, ev.Type, node.Tag, ev.Target.String())
	}
	h(ev.Value)
	return nil
}

// abort resets the per-cycle flags after a panic escaped a handler or Render.
func (e *Engine) abort() {
	e.queue = nil
	e.dispatching = false
	e.rendering = false
	e.preparing = false
	e.dirty = false
}

// Tree returns the most recently rendered tree.
func (e *Engine) Tree() *vdom.VNode {
	return e.prevVDOM
}

// Renders returns the number of completed render cycles.
func (e *Engine) Renders() int {
	return e.renders
}

// Root returns the mounted root component.
func (e *Engine) Root() Component {
	return e.root
}
