package components

import (
	"fmt"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// Hello greets Name in a heading.
type Hello struct {
	runtime.ComponentBase
	Name string `prop:"name"`
}

func (c *Hello) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.H1(fmt.Sprintf("안녕하세요, %s!", c.Name), nil),
	)
}

// Welcome renders a single heading.
type Welcome struct {
	runtime.ComponentBase
	Name string `prop:"name"`
}

func (c *Welcome) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.H1(fmt.Sprintf("hello, %s!", c.Name), nil)
}

// Greeting shows a name and an age passed by its parent.
type Greeting struct {
	runtime.ComponentBase
	Name string `prop:"name"`
	Age  int    `prop:"age"`
}

func (c *Greeting) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.H2(fmt.Sprintf("안녕하세요, %s님!", c.Name), nil),
		vdom.Paragraph(fmt.Sprintf("나이 : %d세", c.Age), nil),
	)
}

// ApplyProps copies props from a freshly built Greeting.
func (c *Greeting) ApplyProps(next runtime.Component) {
	if g, ok := next.(*Greeting); ok {
		c.Name, c.Age = g.Name, g.Age
	}
}

// GreetingApp composes two Greetings.
type GreetingApp struct {
	runtime.ComponentBase
}

func (c *GreetingApp) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		r.RenderChild("greeting-0", &Greeting{Name: "홍길동", Age: 20}),
		r.RenderChild("greeting-1", &Greeting{Name: "김철수", Age: 25}),
	)
}
