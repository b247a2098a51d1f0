package surface

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/vcrobe/nojs-classroom/vdom"
)

// Line is one row of text produced from a display tree.
type Line struct {
	Text  string
	Color string // CSS color name or hex, "" for default
	Right bool   // text-align: right
}

// Layout flattens a tree into lines. Block elements start a new line;
// list items are bulleted, buttons bracketed and inputs prompted.
func Layout(root *vdom.VNode) []Line {
	var lines []Line
	var walk func(n *vdom.VNode, depth int)
	walk = func(n *vdom.VNode, depth int) {
		if n == nil {
			return
		}
		style := parseStyle(n.Attr("style"))
		line := Line{Color: style["color"], Right: style["text-align"] == "right"}
		indent := strings.Repeat("  ", depth)

		switch n.Tag {
		case vdom.TextTag, "p", "span":
			line.Text = indent + n.Content
		case "h1":
			line.Text = indent + "# " + n.Content
		case "h2":
			line.Text = indent + "## " + n.Content
		case "li":
			line.Text = indent + "• " + n.Content
		case "button":
			line.Text = indent + "[" + n.TextContent() + "]"
			lines = append(lines, line)
			return
		case "input":
			line.Text = indent + "> " + n.Content
		case "img":
			line.Text = indent + "[img: " + n.Attr("alt") + "]"
		default:
			line.Text = indent + n.Content
		}
		if strings.TrimSpace(line.Text) != "" {
			lines = append(lines, line)
		}

		childDepth := depth
		if n.Tag == "ul" {
			childDepth++
		}
		for _, c := range n.Children {
			walk(c, childDepth)
		}
	}
	walk(root, 0)
	return lines
}

func parseStyle(s string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out[strings.TrimSpace(strings.ToLower(k))] = strings.TrimSpace(v)
	}
	return out
}

// DisplayWidth returns the number of terminal columns s occupies. East Asian
// wide and fullwidth runes take two columns.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// PadLeft right-aligns s within cols columns.
func PadLeft(s string, cols int) string {
	if pad := cols - DisplayWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
