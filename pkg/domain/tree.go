package domain

import (
	"iter"
	"strings"
)

// Find returns the first node with the given id in pre-order (the node itself,
// then each child subtree in order), or nil if no node matches.
func Find(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Remove unlinks the first descendant of root whose id matches, together with
// its whole subtree. The root itself is never removed.
// It reports whether a node was removed.
func Remove(root *Node, id string) bool {
	if root == nil {
		return false
	}
	for i, child := range root.Children {
		if child.ID == id {
			root.Children = append(root.Children[:i], root.Children[i+1:]...)
			return true
		}
		if Remove(child, id) {
			return true
		}
	}
	return false
}

// Append adds child as the last child of parent.
func Append(parent, child *Node) {
	if child.Children == nil {
		child.Children = []*Node{}
	}
	parent.Children = append(parent.Children, child)
}

// Walk visits root and its descendants in pre-order.
// If fn returns false the children of that node are skipped.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Render yields one display line per node in pre-order, indented two spaces
// per level. Each call to the returned sequence starts a fresh traversal.
func Render(root *Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		renderNode(root, 0, yield)
	}
}

func renderNode(n *Node, depth int, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if !yield(FormatLine(n, depth)) {
		return false
	}
	for _, child := range n.Children {
		if !renderNode(child, depth+1, yield) {
			return false
		}
	}
	return true
}

// FormatLine formats a single hierarchy line for a node at the given depth.
func FormatLine(n *Node, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	if depth > 0 {
		b.WriteString("├─ ")
	}
	b.WriteString(n.ID)
	b.WriteString(" — ")
	b.WriteString(n.Title)
	return b.String()
}

// Size returns the number of nodes in the subtree rooted at n.
func Size(n *Node) int {
	count := 0
	Walk(n, func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Clone returns a deep copy of the subtree rooted at n.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := NewNode(n.ID, n.Title, n.Description)
	for _, child := range n.Children {
		c.Children = append(c.Children, Clone(child))
	}
	return c
}

// Equal reports whether two trees have the same fields and the same children
// in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID != b.ID || a.Title != b.Title || a.Description != b.Description {
		return false
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
