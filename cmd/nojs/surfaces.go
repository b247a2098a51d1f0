package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-classroom/internal/config"
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/surface"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// newSurface builds the configured display sink writing to w.
func newSurface(w io.Writer) (runtime.Surface, error) {
	switch cfg.Surface {
	case config.SurfaceMarkdown:
		return surface.NewMarkdown(w, cfg.MarkdownStyle, cfg.Width)
	case config.SurfaceHTML:
		return htmlPrinter{w: w}, nil
	default:
		return surface.NewTerminal(w,
			surface.WithWidth(cfg.Width),
			surface.WithTerminalLogger(logger),
		), nil
	}
}

// htmlPrinter writes each frame as one HTML fragment per line.
type htmlPrinter struct {
	w io.Writer
}

func (p htmlPrinter) Mount(tree *vdom.VNode) error {
	return p.print(tree)
}

func (p htmlPrinter) Patch(tree *vdom.VNode, _ []vdom.Patch) error {
	return p.print(tree)
}

func (p htmlPrinter) print(tree *vdom.VNode) error {
	if err := vdom.RenderHTML(p.w, tree); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

// parseProps turns key=value pairs into a props map. Values stay the raw
// strings given; numeric props are converted when decoded. A value written as
// a YAML flow sequence ("fruits=[망고, 딸기]") becomes a list of strings.
func parseProps(pairs []string) (map[string]any, error) {
	props := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("prop %q: want key=value", pair)
		}
		props[k] = v
		if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
			var list []string
			if err := yaml.Unmarshal([]byte(v), &list); err != nil {
				return nil, fmt.Errorf("prop %q: %w", k, err)
			}
			props[k] = list
		}
	}
	return props, nil
}
