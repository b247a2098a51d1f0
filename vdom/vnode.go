package vdom

import (
	"fmt"
	"sort"
	"strings"
)

// TextTag is the tag of a bare text node (no element wrapper).
const TextTag = "#text"

// Handler is an event callback bound to a node. For "change" events value
// carries the new input text; for "click" it is empty.
type Handler func(value string)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string             // The HTML tag name
	Key        string             // Stable identity among siblings (list index, child key)
	Attributes map[string]string  // The attributes of the node
	Children   []*VNode           // The child nodes
	Content    string             // The text content of the node
	Events     map[string]Handler // Event handlers keyed by event name ("click", "change")
}

// NewVNode creates a new VNode.
//
// Attributes whose key starts with "on" and whose value is a function are
// moved to Events: "onClick" becomes "click", "onChange" becomes "change".
// Accepted handler shapes are func(), func(string) and Handler. All other
// values are stored in their fmt.Sprint form. The attrs map is not modified.
func NewVNode(tag string, attrs map[string]any, children []*VNode, content string) *VNode {
	n := &VNode{
		Tag:      tag,
		Children: children,
		Content:  content,
	}
	for k, v := range attrs {
		if h, ok := asHandler(v); ok && isEventKey(k) {
			if n.Events == nil {
				n.Events = make(map[string]Handler)
			}
			n.Events[eventName(k)] = h
			continue
		}
		if n.Attributes == nil {
			n.Attributes = make(map[string]string, len(attrs))
		}
		n.Attributes[k] = fmt.Sprint(v)
	}
	return n
}

func isEventKey(k string) bool {
	return len(k) > 2 && k[0] == 'o' && k[1] == 'n'
}

// eventName converts "onClick" -> "click", "onInput" -> "input".
func eventName(k string) string {
	return strings.ToLower(k[2:3]) + k[3:]
}

func asHandler(v any) (Handler, bool) {
	switch f := v.(type) {
	case Handler:
		return f, f != nil
	case func(string):
		return Handler(f), f != nil
	case func():
		if f == nil {
			return nil, false
		}
		return func(string) { f() }, true
	}
	return nil, false
}

// Keyed sets the node key and returns the node, for use while building a tree.
func (v *VNode) Keyed(key string) *VNode {
	v.Key = key
	return v
}

// Attr returns the attribute value, or "" if unset.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	return v.Attributes[name]
}

// EventNames returns the sorted names of the events bound to the node.
func (v *VNode) EventNames() []string {
	if v == nil || len(v.Events) == 0 {
		return nil
	}
	names := make([]string, 0, len(v.Events))
	for name := range v.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TextContent concatenates the content of the node and all its descendants.
func (v *VNode) TextContent() string {
	var b strings.Builder
	var walk func(n *VNode)
	walk = func(n *VNode) {
		if n == nil {
			return
		}
		b.WriteString(n.Content)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(v)
	return b.String()
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Tag: TextTag, Content: content}
}

// Paragraph creates a <p> VNode with the given text as its content and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// H1 creates an <h1> heading.
func H1(text string, attrs map[string]any) *VNode {
	return NewVNode("h1", attrs, nil, text)
}

// H2 creates an <h2> heading.
func H2(text string, attrs map[string]any) *VNode {
	return NewVNode("h2", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// The current value is carried in Content.
func InputText(value string, attrs map[string]any) *VNode {
	n := NewVNode("input", attrs, nil, value)
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes["type"] = "text"
	return n
}

// Img creates an <img> VNode.
func Img(src, alt string) *VNode {
	return NewVNode("img", map[string]any{"src": src, "alt": alt}, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Ul creates a <ul> VNode with the given children.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

// Li creates an <li> VNode.
func Li(text string, attrs map[string]any) *VNode {
	return NewVNode("li", attrs, nil, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
