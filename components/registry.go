package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/vcrobe/nojs-classroom/runtime"
)

// ErrUnknownComponent is returned by Registry.New for unregistered names.
var ErrUnknownComponent = errors.New("unknown component")

// Factory builds a component instance from loosely typed props.
type Factory func(props map[string]any) (runtime.Component, error)

// Entry describes one registered component.
type Entry struct {
	Name        string
	Description string
	factory     Factory
}

// Registry maps component names to factories.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces a component.
func (r *Registry) Register(name, description string, f Factory) {
	r.entries[name] = Entry{Name: name, Description: description, factory: f}
}

// New builds the named component. Props override the component's defaults
// field by field; keys that match no prop are ignored.
func (r *Registry) New(name string, props map[string]any) (runtime.Component, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	c, err := e.factory(props)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	return c, nil
}

// Entries returns the registered components sorted by name.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	entries := r.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Props is a loosely typed props record keyed by `prop` tag.
type Props = map[string]any

// With returns a Factory for T. Given props are laid over defaults key by key
// and decoded into a fresh T.
func With[T any, PT interface {
	*T
	runtime.Component
}](defaults Props) Factory {
	return func(props map[string]any) (runtime.Component, error) {
		merged := make(Props, len(defaults)+len(props))
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range props {
			merged[k] = v
		}
		var c T
		if err := DecodeProps(merged, &c); err != nil {
			return nil, err
		}
		return PT(&c), nil
	}
}

// DecodeProps decodes a props map into the `prop`-tagged fields of out.
// Scalars are converted loosely ("20" becomes 20) since props usually come
// from YAML files, flags or form values.
func DecodeProps(props map[string]any, out any) error {
	if len(props) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "prop",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("props decoder: %w", err)
	}
	if err := dec.Decode(props); err != nil {
		return fmt.Errorf("decode props: %w", err)
	}
	return nil
}

// DefaultRegistry returns a registry holding every exercise with the values
// used in class as defaults.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("hello", "heading greeting a name", With[Hello](Props{"name": "홍길동"}))
	r.Register("sum", "inline addition", With[Sum](Props{"a": 3, "b": 5}))
	r.Register("student-status", "conditional line by age", With[StudentStatus](Props{"age": 17}))
	r.Register("fruit-list", "list rendering keyed by index", With[FruitList](Props{"fruits": []string{"망고", "딸기", "거봉"}}))
	r.Register("greeting", "name and age from props", With[Greeting](Props{"name": "홍길동", "age": 20}))
	r.Register("greeting-app", "two greetings composed", With[GreetingApp](nil))
	r.Register("welcome", "single heading", With[Welcome](Props{"name": "철수"}))
	r.Register("wrapper", "children passed through a container", With[WrapperDemo](nil))
	r.Register("user-profile", "input, counter and toggle state", With[UserProfile](nil))
	r.Register("color-text", "black/red color switch", With[ColorText](nil))
	r.Register("profile-card", "profile with like counter", With[ProfileCard](Props{
		"name":      "강우성",
		"studentId": "2022108129",
		"major":     "인공지능학과",
	}))
	r.Register("profile-app", "profile card hosted by an app", With[ProfileApp](nil))
	return r
}
