//go:build !dev

package runtime

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/nojs-classroom/vdom"
)

type panicky struct {
	ComponentBase
}

func (p *panicky) OnInit() { panic("boom") }

func (p *panicky) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph("still here", nil)
}

func TestEngine_LifecyclePanicIsRecovered(t *testing.T) {
	var logs bytes.Buffer
	e := NewEngine(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	tree := e.Mount(&panicky{})

	assert.Equal(t, "still here", tree.Content)
	assert.Contains(t, logs.String(), "lifecycle panic")
	assert.Contains(t, logs.String(), "hook=OnInit")
}
