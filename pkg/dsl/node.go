package dsl

import "github.com/aretw0/ttp/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    *domain.Node
	builder *Builder
}

// Title sets the display title.
func (n *NodeBuilder) Title(title string) *NodeBuilder {
	n.node.Title = title
	return n
}

// Describe sets the free-text description.
func (n *NodeBuilder) Describe(description string) *NodeBuilder {
	n.node.Description = description
	return n
}

// Add appends a child to this node and returns the child's builder.
func (n *NodeBuilder) Add(id string) *NodeBuilder {
	return n.builder.attach(n.node, id)
}

// Up returns the builder of this node's parent, or nil for a top-level node.
func (n *NodeBuilder) Up() *NodeBuilder {
	parent := parentOf(n.builder.root, n.node)
	if parent == nil || parent == n.builder.root {
		return nil
	}
	return n.builder.nodes[parent.ID]
}

func parentOf(root, target *domain.Node) *domain.Node {
	for _, c := range root.Children {
		if c == target {
			return root
		}
		if p := parentOf(c, target); p != nil {
			return p
		}
	}
	return nil
}
