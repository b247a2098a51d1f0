package runtime

import "github.com/vcrobe/nojs-classroom/console"

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method and to own state slots.
type ComponentBase struct {
	renderer Renderer // Use interface type, not concrete implementation
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
// Prefer State.Set, which calls RequestUpdate with the slot that changed.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}

// Rendering reports whether the attached renderer is inside Render.
func (b *ComponentBase) Rendering() bool {
	return b.renderer != nil && b.renderer.Rendering()
}

// RequestUpdate forwards a slot change to the renderer.
func (b *ComponentBase) RequestUpdate(u Update) {
	if b.renderer == nil {
		console.Error("RequestUpdate for slot", u.Slot, "called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.RequestUpdate(u)
}
