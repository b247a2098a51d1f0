package vdom

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by child indices from the root. The empty path is
// the root itself. Its string form joins indices with dots ("0.2.1").
type Path []int

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Child returns a new path extended by idx. The receiver is not modified.
func (p Path) Child(idx int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = idx
	return out
}

// ParsePath parses the dotted form produced by Path.String.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path segment %q in %q", part, s)
		}
		p[i] = idx
	}
	return p, nil
}

// Find returns the node at p, or nil if the path leaves the tree.
func Find(root *VNode, p Path) *VNode {
	n := root
	for _, idx := range p {
		if n == nil || idx >= len(n.Children) {
			return nil
		}
		n = n.Children[idx]
	}
	return n
}

// Walk visits every non-nil node depth-first in document order. Returning
// false from fn skips the node's children.
func Walk(root *VNode, fn func(p Path, n *VNode) bool) {
	var walk func(p Path, n *VNode)
	walk = func(p Path, n *VNode) {
		if n == nil || !fn(p, n) {
			return
		}
		for i, c := range n.Children {
			walk(p.Child(i), c)
		}
	}
	walk(Path{}, root)
}

// FindFirst returns the first node in document order matching pred.
func FindFirst(root *VNode, pred func(n *VNode) bool) (Path, *VNode) {
	var (
		found     *VNode
		foundPath Path
	)
	Walk(root, func(p Path, n *VNode) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found, foundPath = n, p
			return false
		}
		return true
	})
	return foundPath, found
}

// FindButton returns the first <button> whose text equals label.
func FindButton(root *VNode, label string) (Path, *VNode) {
	return FindFirst(root, func(n *VNode) bool {
		return n.Tag == "button" && n.TextContent() == label
	})
}
