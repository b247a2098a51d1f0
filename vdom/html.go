package vdom

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes added to event-bearing elements so a host page can route a
// browser event back to the node that declared it.
const (
	PathAttr   = "data-nojs-path"
	EventsAttr = "data-nojs-on"
)

// RenderHTML writes the tree as HTML.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTMLNode(Path{}, n))
}

// HTMLString renders the tree to a string. Render errors are impossible
// when writing to memory, so they are dropped.
func HTMLString(n *VNode) string {
	var buf bytes.Buffer
	_ = RenderHTML(&buf, n)
	return buf.String()
}

func toHTMLNode(p Path, n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: htmlAttrName(k), Val: n.Attributes[k]})
	}
	if n.Key != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-key", Val: n.Key})
	}
	if names := n.EventNames(); len(names) > 0 {
		el.Attr = append(el.Attr,
			html.Attribute{Key: PathAttr, Val: p.String()},
			html.Attribute{Key: EventsAttr, Val: strings.Join(names, " ")},
		)
	}

	// Void elements carry their content as the value attribute.
	if n.Tag == "input" {
		el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		return el
	}
	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for i, c := range n.Children {
		if c == nil {
			continue
		}
		el.AppendChild(toHTMLNode(p.Child(i), c))
	}
	return el
}

func htmlAttrName(k string) string {
	if k == "className" {
		return "class"
	}
	return k
}
