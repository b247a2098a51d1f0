package vdom

import "sort"

// PatchOp identifies the kind of change a Patch describes.
type PatchOp int

const (
	// OpReplace swaps the node at Path for Node.
	OpReplace PatchOp = iota
	// OpSetAttr sets attribute Name to Value.
	OpSetAttr
	// OpRemoveAttr removes attribute Name.
	OpRemoveAttr
	// OpSetText replaces the node content with Value.
	OpSetText
	// OpSetEvents rebinds the node's handlers from Node.
	OpSetEvents
	// OpInsert appends Node as a new child at Path.
	OpInsert
	// OpRemove removes the child at Path.
	OpRemove
)

var opNames = map[PatchOp]string{
	OpReplace:    "replace",
	OpSetAttr:    "set-attr",
	OpRemoveAttr: "remove-attr",
	OpSetText:    "set-text",
	OpSetEvents:  "set-events",
	OpInsert:     "insert",
	OpRemove:     "remove",
}

func (o PatchOp) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "unknown"
}

// Patch is one change a host surface must apply to move from the previous
// tree to the new one.
type Patch struct {
	Op    PatchOp
	Path  Path
	Node  *VNode
	Name  string
	Value string
}

// Diff compares old and new trees and returns the patches that turn old into
// new. Children are matched by position; a differing tag or key replaces the
// whole subtree. Removals are emitted from the highest index down so paths
// stay valid while applying them in order.
func Diff(old, new *VNode) []Patch {
	var patches []Patch
	diffNode(Path{}, old, new, &patches)
	return patches
}

func diffNode(p Path, old, new *VNode, out *[]Patch) {
	switch {
	case old == nil && new == nil:
		return
	case old == nil || new == nil || old.Tag != new.Tag || old.Key != new.Key:
		*out = append(*out, Patch{Op: OpReplace, Path: p, Node: new})
		return
	}

	diffAttributes(p, old.Attributes, new.Attributes, out)

	// Handler identity is not tracked: dispatch always resolves against the
	// latest tree, so only a change in the bound event names is reported.
	if !sameEventNames(old, new) {
		*out = append(*out, Patch{Op: OpSetEvents, Path: p, Node: new})
	}

	if old.Content != new.Content {
		*out = append(*out, Patch{Op: OpSetText, Path: p, Value: new.Content})
	}

	diffChildren(p, old.Children, new.Children, out)
}

func diffAttributes(p Path, oldAttrs, newAttrs map[string]string, out *[]Patch) {
	var removed []string
	for k := range oldAttrs {
		if _, ok := newAttrs[k]; !ok {
			removed = append(removed, k)
		}
	}
	sort.Strings(removed)
	for _, k := range removed {
		*out = append(*out, Patch{Op: OpRemoveAttr, Path: p, Name: k})
	}

	keys := make([]string, 0, len(newAttrs))
	for k := range newAttrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := oldAttrs[k]; !ok || v != newAttrs[k] {
			*out = append(*out, Patch{Op: OpSetAttr, Path: p, Name: k, Value: newAttrs[k]})
		}
	}
}

func diffChildren(p Path, oldChildren, newChildren []*VNode, out *[]Patch) {
	minLen := min(len(oldChildren), len(newChildren))
	for i := 0; i < minLen; i++ {
		diffNode(p.Child(i), oldChildren[i], newChildren[i], out)
	}
	for i := len(oldChildren); i < len(newChildren); i++ {
		*out = append(*out, Patch{Op: OpInsert, Path: p.Child(i), Node: newChildren[i]})
	}
	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		*out = append(*out, Patch{Op: OpRemove, Path: p.Child(i)})
	}
}

func sameEventNames(a, b *VNode) bool {
	if len(a.Events) != len(b.Events) {
		return false
	}
	for name := range a.Events {
		if _, ok := b.Events[name]; !ok {
			return false
		}
	}
	return true
}
