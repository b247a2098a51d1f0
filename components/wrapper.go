package components

import (
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// Wrapper places the content its caller built inside a styled container.
// Children are not inspected or copied.
type Wrapper struct {
	runtime.ComponentBase
	Children []*vdom.VNode
}

func (c *Wrapper) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"className": "Wrapper"}, c.Children...)
}

func (c *Wrapper) ApplyProps(next runtime.Component) {
	if w, ok := next.(*Wrapper); ok {
		c.Children = w.Children
	}
}

// WrapperDemo passes a paragraph and a button through a Wrapper.
type WrapperDemo struct {
	runtime.ComponentBase
}

func (c *WrapperDemo) Render(r runtime.Renderer) *vdom.VNode {
	return r.RenderChild("wrapper", &Wrapper{
		Children: []*vdom.VNode{
			vdom.Paragraph("안의 내용", nil),
			vdom.Button("button", nil),
		},
	})
}
