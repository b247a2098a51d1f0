// Package scenario runs scripted interactions against a component: mount it,
// fire a list of events and check the resulting tree.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

var (
	ErrNoComponent = errors.New("scenario names no component")
	ErrBadStep     = errors.New("invalid step")
	ErrExpectation = errors.New("expectation not met")
)

// Scenario is a scripted session.
//
//	component: profile-card
//	props: {name: 강우성}
//	events:
//	  - button: 좋아요
//	    repeat: 3
//	expect:
//	  - 좋아요 3개
type Scenario struct {
	Component string         `yaml:"component"`
	Props     map[string]any `yaml:"props"`
	Events    []Step         `yaml:"events"`
	Expect    []string       `yaml:"expect"`
}

// Step is one event. Exactly one of Target (a dotted path) or Button (a
// button label) locates the node. Type defaults to "click".
type Step struct {
	Target string `yaml:"target"`
	Button string `yaml:"button"`
	Type   string `yaml:"type"`
	Value  string `yaml:"value"`
	Repeat int    `yaml:"repeat"`
}

// Result summarizes a finished run.
type Result struct {
	Tree    *vdom.VNode
	Events  int
	Renders int
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Component == "" {
		return Scenario{}, ErrNoComponent
	}
	for i, st := range s.Events {
		if (st.Target == "") == (st.Button == "") {
			return Scenario{}, fmt.Errorf("%w %d: set exactly one of target or button", ErrBadStep, i)
		}
		if st.Repeat < 0 {
			return Scenario{}, fmt.Errorf("%w %d: negative repeat", ErrBadStep, i)
		}
	}
	return s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Run builds the scenario's component from reg, mounts it on e and fires
// every step in order. It stops at the first event error.
func Run(e *runtime.Engine, reg *components.Registry, s Scenario) (Result, error) {
	comp, err := reg.New(s.Component, s.Props)
	if err != nil {
		return Result{}, err
	}
	e.Mount(comp)

	var res Result
	for i, st := range s.Events {
		n := max(st.Repeat, 1)
		for range n {
			ev, err := resolve(e.Tree(), st)
			if err != nil {
				return res, fmt.Errorf("step %d: %w", i, err)
			}
			if err := e.Dispatch(ev); err != nil {
				return res, fmt.Errorf("step %d: %w", i, err)
			}
			res.Events++
		}
	}
	res.Tree = e.Tree()
	res.Renders = e.Renders()

	for _, want := range s.Expect {
		if !containsText(res.Tree, want) {
			return res, fmt.Errorf("%w: no node reads %q", ErrExpectation, want)
		}
	}
	return res, nil
}

// resolve turns a step into an event against the current tree. Button labels
// are looked up again for every repetition since the tree changes.
func resolve(tree *vdom.VNode, st Step) (runtime.Event, error) {
	ev := runtime.Event{Type: st.Type, Value: st.Value}
	if ev.Type == "" {
		ev.Type = "click"
	}
	if st.Button != "" {
		p, n := vdom.FindButton(tree, st.Button)
		if n == nil {
			return ev, fmt.Errorf("%w: button %q", runtime.ErrNoTarget, st.Button)
		}
		ev.Target = p
		return ev, nil
	}
	p, err := vdom.ParsePath(st.Target)
	if err != nil {
		return ev, fmt.Errorf("%w: %v", ErrBadStep, err)
	}
	ev.Target = p
	return ev, nil
}

func containsText(root *vdom.VNode, want string) bool {
	_, n := vdom.FindFirst(root, func(n *vdom.VNode) bool {
		return strings.TrimSpace(n.TextContent()) == want || n.Content == want
	})
	return n != nil
}
