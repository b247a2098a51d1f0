package components

import (
	"strconv"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// FruitList renders Fruits as list items keyed by position.
type FruitList struct {
	runtime.ComponentBase
	Fruits []string `prop:"fruits"`
}

func (c *FruitList) Render(r runtime.Renderer) *vdom.VNode {
	items := make([]*vdom.VNode, len(c.Fruits))
	for i, fruit := range c.Fruits {
		items[i] = vdom.Li(fruit, nil).Keyed(strconv.Itoa(i))
	}
	return vdom.Div(nil, vdom.Ul(nil, items...))
}
