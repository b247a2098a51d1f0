package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

var _ runtime.Surface = (*Markdown)(nil)

// Markdown converts every frame to markdown and prints it through glamour.
type Markdown struct {
	w      io.Writer
	render func(string) (string, error)
}

// NewMarkdown creates a markdown surface. style is a glamour standard style
// name ("dark", "light", "notty", ...); "" or "auto" detects the background.
func NewMarkdown(w io.Writer, style string, wordWrap int) (*Markdown, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Markdown{w: w, render: r.Render}, nil
}

func (m *Markdown) Mount(tree *vdom.VNode) error {
	return m.print(tree)
}

func (m *Markdown) Patch(tree *vdom.VNode, _ []vdom.Patch) error {
	return m.print(tree)
}

func (m *Markdown) print(tree *vdom.VNode) error {
	out, err := m.render(ToMarkdown(tree))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	if _, err := io.WriteString(m.w, out); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "#", `\#`,
)

// ToMarkdown converts a display tree to markdown.
func ToMarkdown(root *vdom.VNode) string {
	var b strings.Builder
	var walk func(n *vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		text := mdEscaper.Replace(n.Content)
		switch n.Tag {
		case "h1":
			fmt.Fprintf(&b, "# %s\n\n", text)
		case "h2":
			fmt.Fprintf(&b, "## %s\n\n", text)
		case "p", vdom.TextTag:
			if text != "" {
				fmt.Fprintf(&b, "%s\n\n", text)
			}
		case "li":
			fmt.Fprintf(&b, "- %s\n", text)
		case "button":
			fmt.Fprintf(&b, "`[%s]`\n\n", n.TextContent())
			return
		case "input":
			fmt.Fprintf(&b, "> %s\n\n", text)
		case "img":
			fmt.Fprintf(&b, "![%s](%s)\n\n", mdEscaper.Replace(n.Attr("alt")), n.Attr("src"))
		default:
			if text != "" {
				fmt.Fprintf(&b, "%s\n\n", text)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
		if n.Tag == "ul" {
			b.WriteString("\n")
		}
	}
	walk(root)
	return b.String()
}
