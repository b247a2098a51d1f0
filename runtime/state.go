package runtime

// State is a named, typed state slot owned by one component instance.
//
// A State is not safe for concurrent use: it is read during Render and
// written by event handlers, both of which run on the engine's goroutine.
//
// Example usage:
//
//	func (c *ProfileCard) OnInit() {
//	    c.likeCount = runtime.NewState(&c.ComponentBase, "likeCount", 0)
//	}
//
//	func (c *ProfileCard) HandleLike() {
//	    c.likeCount.Set(c.likeCount.Get() + 1)
//	}
type State[T any] struct {
	name  string
	value T
	owner *ComponentBase
}

// NewState creates a slot with the given initial value, owned by owner.
func NewState[T any](owner *ComponentBase, name string, initial T) *State[T] {
	return &State[T]{name: name, value: initial, owner: owner}
}

// Name returns the slot identifier.
func (s *State[T]) Name() string {
	return s.name
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set stores v and asks the owner's renderer for a re-render. Writes made
// while the renderer is inside Render are dropped; the renderer logs them.
func (s *State[T]) Set(v T) {
	if !s.owner.Rendering() {
		s.value = v
	}
	s.owner.RequestUpdate(Update{Slot: s.name, Value: v})
}

// Update applies fn to the current value and stores the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}
