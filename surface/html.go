package surface

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

var _ runtime.Surface = (*HTML)(nil)

// Frame is one rendered HTML fragment.
type Frame struct {
	Version uint64 `json:"version"`
	HTML    string `json:"html"`
}

// HTML keeps the latest rendered fragment and pushes each new one to
// subscribers. It is written from the engine goroutine and read from HTTP
// handlers, so all access is locked.
type HTML struct {
	mu     sync.RWMutex
	frame  Frame
	subs   map[int]chan Frame
	nextID int
}

// NewHTML creates an empty HTML surface.
func NewHTML() *HTML {
	return &HTML{subs: make(map[int]chan Frame)}
}

func (h *HTML) Mount(tree *vdom.VNode) error {
	return h.publish(tree)
}

func (h *HTML) Patch(tree *vdom.VNode, _ []vdom.Patch) error {
	return h.publish(tree)
}

func (h *HTML) publish(tree *vdom.VNode) error {
	var buf bytes.Buffer
	if err := vdom.RenderHTML(&buf, tree); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	h.mu.Lock()
	h.frame = Frame{Version: h.frame.Version + 1, HTML: buf.String()}
	f := h.frame
	subs := make([]chan Frame, 0, len(h.subs))
	for _, ch := range h.subs {
		subs = append(subs, ch)
	}
	h.mu.Unlock()

	for _, ch := range subs {
		// Latest frame wins for slow subscribers.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- f:
		default:
		}
	}
	return nil
}

// Current returns the latest frame.
func (h *HTML) Current() Frame {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frame
}

// Subscribe registers for new frames. Call the returned func to stop.
func (h *HTML) Subscribe() (<-chan Frame, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Frame, 1)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}
