package components

import (
	"fmt"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// Sum prints an addition with its result, e.g. "3+5=8".
type Sum struct {
	runtime.ComponentBase
	A int `prop:"a"`
	B int `prop:"b"`
}

func (c *Sum) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(fmt.Sprintf("%d+%d=%d", c.A, c.B, c.A+c.B), nil)
}
