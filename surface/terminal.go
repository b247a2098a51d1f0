package surface

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

var _ runtime.Surface = (*Terminal)(nil)

// DefaultWidth is the column count used when none is configured.
const DefaultWidth = 60

// Terminal prints every frame as text. Colors come from the node style and
// are rendered for the output's color profile. Right-aligned lines are
// padded to the configured width.
type Terminal struct {
	w       io.Writer
	profile *termenv.Profile
	out     *termenv.Output
	width   int
	logger  *slog.Logger
	dmp     *diffmatchpatch.DiffMatchPatch
	last    string
	frames  int
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithWidth sets the column count used for right alignment.
func WithWidth(cols int) TerminalOption {
	return func(t *Terminal) {
		if cols > 0 {
			t.width = cols
		}
	}
}

// WithProfile forces a color profile, e.g. termenv.Ascii for plain output.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) { t.profile = &p }
}

// WithTerminalLogger sets the logger that receives frame diffs at debug level.
func WithTerminalLogger(l *slog.Logger) TerminalOption {
	return func(t *Terminal) { t.logger = l }
}

// NewTerminal creates a terminal surface writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		w:      w,
		width:  DefaultWidth,
		logger: slog.Default(),
		dmp:    diffmatchpatch.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.profile != nil {
		t.out = termenv.NewOutput(w, termenv.WithProfile(*t.profile))
	} else {
		t.out = termenv.NewOutput(w)
	}
	return t
}

func (t *Terminal) Mount(tree *vdom.VNode) error {
	return t.print(tree)
}

func (t *Terminal) Patch(tree *vdom.VNode, patches []vdom.Patch) error {
	t.logger.Debug("terminal patch", "patches", len(patches))
	return t.print(tree)
}

// Frame renders tree to plain text without color.
func (t *Terminal) Frame(tree *vdom.VNode) string {
	return t.render(tree, false)
}

func (t *Terminal) render(tree *vdom.VNode, colored bool) string {
	var b strings.Builder
	for _, l := range Layout(tree) {
		text := l.Text
		if l.Right {
			text = PadLeft(strings.TrimLeft(text, " "), t.width)
		}
		if c := colorValue(l.Color); colored && c != "" {
			text = t.out.String(text).Foreground(t.out.Color(c)).String()
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *Terminal) print(tree *vdom.VNode) error {
	frame := t.Frame(tree)
	if t.frames > 0 {
		diffs := t.dmp.DiffMain(t.last, frame, false)
		diffs = t.dmp.DiffCleanupSemantic(diffs)
		t.logger.Debug("terminal frame changed",
			"frame", t.frames,
			"distance", t.dmp.DiffLevenshtein(diffs),
			"delta", t.dmp.DiffToDelta(diffs),
		)
	}
	t.last = frame
	t.frames++

	out := t.render(tree, true) + strings.Repeat("─", t.width) + "\n"
	if _, err := io.WriteString(t.w, out); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ansiColors maps CSS names to ANSI palette indexes. Black is left to the
// terminal default foreground so it stays readable on dark backgrounds.
var ansiColors = map[string]string{
	"black":   "",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

func colorValue(css string) string {
	css = strings.ToLower(strings.TrimSpace(css))
	if c, ok := ansiColors[css]; ok {
		return c
	}
	if strings.HasPrefix(css, "#") {
		return css
	}
	return ""
}
