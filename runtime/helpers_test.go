package runtime

import (
	"fmt"
	"time"

	"github.com/vcrobe/nojs-classroom/vdom"
)

type counter struct {
	ComponentBase
	label   string
	count   *State[int]
	inits   int
	destroy int
}

func (c *counter) OnInit() {
	c.inits++
	c.count = NewState(&c.ComponentBase, "count", 0)
}

func (c *counter) OnDestroy() { c.destroy++ }

func (c *counter) Render(r Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.Button(c.label, map[string]any{"onClick": func() { c.count.Update(func(n int) int { return n + 1 }) }}),
		vdom.Paragraph(fmt.Sprintf("count %d", c.count.Get()), nil),
	)
}

type echo struct {
	ComponentBase
	text *State[string]
}

func (c *echo) OnInit() {
	c.text = NewState(&c.ComponentBase, "text", "")
}

func (c *echo) Render(r Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.InputText(c.text.Get(), map[string]any{"onChange": c.text.Set}),
		vdom.Paragraph("text: "+c.text.Get(), nil),
	)
}

// panel renders one counter per key and a button to drop the last one.
type panel struct {
	ComponentBase
	keys     *State[[]string]
	children map[string]*counter
}

func (p *panel) OnInit() {
	p.keys = NewState(&p.ComponentBase, "keys", []string{"a", "b"})
	p.children = make(map[string]*counter)
}

func (p *panel) Render(r Renderer) *vdom.VNode {
	kids := []*vdom.VNode{
		vdom.Button("drop", map[string]any{"onClick": func() {
			keys := p.keys.Get()
			p.keys.Set(keys[:len(keys)-1])
		}}),
	}
	for _, k := range p.keys.Get() {
		c, ok := p.children[k]
		if !ok {
			c = &counter{label: k}
			p.children[k] = c
		}
		kids = append(kids, r.RenderChild(k, c))
	}
	return vdom.Div(nil, kids...)
}

// badRender changes state while rendering.
type badRender struct {
	ComponentBase
	n *State[int]
}

func (b *badRender) OnInit() { b.n = NewState(&b.ComponentBase, "n", 0) }

func (b *badRender) Render(r Renderer) *vdom.VNode {
	b.n.Set(b.n.Get() + 1)
	return vdom.Paragraph(fmt.Sprintf("n %d", b.n.Get()), nil)
}

// seeded writes its slot from OnInit and OnPropertiesSet.
type seeded struct {
	ComponentBase
	label *State[string]
}

func (s *seeded) OnInit() {
	s.label = NewState(&s.ComponentBase, "label", "")
	s.label.Set("ready")
}

func (s *seeded) OnPropertiesSet() {
	if s.label.Get() == "ready" {
		s.label.Set("ready!")
	}
}

func (s *seeded) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph(s.label.Get(), nil)
}

type seededParent struct {
	ComponentBase
	child *seeded
}

func (p *seededParent) Render(r Renderer) *vdom.VNode {
	return vdom.Div(nil, r.RenderChild("seeded", p.child))
}

type recordingSurface struct {
	mounts  []*vdom.VNode
	patches [][]vdom.Patch
}

func (s *recordingSurface) Mount(tree *vdom.VNode) error {
	s.mounts = append(s.mounts, tree)
	return nil
}

func (s *recordingSurface) Patch(_ *vdom.VNode, patches []vdom.Patch) error {
	s.patches = append(s.patches, patches)
	return nil
}

type recordingObserver struct {
	renders int
	events  []error
	updates []Update
}

func (o *recordingObserver) RenderCompleted(string, time.Duration, int) { o.renders++ }
func (o *recordingObserver) EventHandled(_ Event, err error) { o.events = append(o.events, err) }
func (o *recordingObserver) StateUpdated(u Update) { o.updates = append(o.updates, u) }
