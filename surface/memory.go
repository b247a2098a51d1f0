package surface

import (
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

var _ runtime.Surface = (*Memory)(nil)

// Memory records every tree and patch list it receives.
type Memory struct {
	Frames  []*vdom.VNode
	Patches [][]vdom.Patch
}

func (m *Memory) Mount(tree *vdom.VNode) error {
	m.Frames = append(m.Frames, tree)
	m.Patches = append(m.Patches, nil)
	return nil
}

func (m *Memory) Patch(tree *vdom.VNode, patches []vdom.Patch) error {
	m.Frames = append(m.Frames, tree)
	m.Patches = append(m.Patches, patches)
	return nil
}

// Last returns the latest frame, or nil.
func (m *Memory) Last() *vdom.VNode {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}
