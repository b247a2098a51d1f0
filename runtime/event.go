package runtime

import (
	"errors"
	"fmt"

	"github.com/vcrobe/nojs-classroom/vdom"
)

var (
	// ErrNotMounted is returned when an event arrives before a root was mounted.
	ErrNotMounted = errors.New("no component mounted")
	// ErrNoTarget is returned when the event path does not resolve in the current tree.
	ErrNoTarget = errors.New("event target not found")
	// ErrNoHandler is returned when the target node has no handler for the event type.
	ErrNoHandler = errors.New("no handler bound")
)

// Event is a user interaction addressed to a node of the currently displayed tree.
type Event struct {
	Target vdom.Path
	Type   string // "click", "change", ...
	Value  string // new input text for "change"
}

// Click builds a click event for target.
func Click(target vdom.Path) Event {
	return Event{Target: target, Type: "click"}
}

// Change builds a change event carrying value.
func Change(target vdom.Path, value string) Event {
	return Event{Target: target, Type: "change", Value: value}
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%q", e.Type, e.Target.String())
}
