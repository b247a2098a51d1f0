package vdom

// Equal reports whether two trees are structurally identical: same tags,
// keys, attributes, content, bound event names and children. Handler
// identity is not compared since closures are rebuilt on every render.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Key != b.Key || a.Content != b.Content {
		return false
	}
	if !attrsEqual(a.Attributes, b.Attributes) {
		return false
	}
	if len(a.Events) != len(b.Events) {
		return false
	}
	for name := range a.Events {
		if _, ok := b.Events[name]; !ok {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}
