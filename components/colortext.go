package components

import (
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// TextColor is the two-valued color of ColorText.
type TextColor string

const (
	Black TextColor = "black"
	Red   TextColor = "red"
)

// Flip returns the other color.
func (c TextColor) Flip() TextColor {
	if c == Black {
		return Red
	}
	return Black
}

// ColorText switches a paragraph between black and red.
type ColorText struct {
	runtime.ComponentBase
	textColor *runtime.State[TextColor]
}

func (c *ColorText) OnInit() {
	c.textColor = runtime.NewState(&c.ComponentBase, "textColor", Black)
}

// ChangeColor flips the text color.
func (c *ColorText) ChangeColor() {
	c.textColor.Set(c.textColor.Get().Flip())
}

// TextColor returns the current color.
func (c *ColorText) TextColor() TextColor {
	return c.textColor.Get()
}

func (c *ColorText) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.Paragraph("이 텍스트의 색상이 바뀝니다.", map[string]any{
			"style": "color: " + string(c.textColor.Get()),
		}),
		vdom.Button("색상변경", map[string]any{"onClick": c.ChangeColor}),
	)
}
