package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/ttp/pkg/adapters/memory"
	"github.com/aretw0/ttp/pkg/domain"
)

// ErrEmptyID is returned by Build when a node was added without an id.
var ErrEmptyID = errors.New("node id cannot be empty")

// Builder manages the tree construction. It starts from the skeleton root.
type Builder struct {
	root  *domain.Node
	nodes map[string]*NodeBuilder
	err   error
}

// New creates a new tree builder.
func New() *Builder {
	return &Builder{
		root:  domain.NewSkeleton(),
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new top-level tactic under the root.
// If the id already exists anywhere in the tree, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	return b.attach(b.root, id)
}

func (b *Builder) attach(parent *domain.Node, id string) *NodeBuilder {
	if id == "" && b.err == nil {
		b.err = fmt.Errorf("child of %q: %w", parent.ID, ErrEmptyID)
	}
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node:    domain.NewNode(id, "", ""),
		builder: b,
	}
	domain.Append(parent, nb.node)
	b.nodes[id] = nb
	return nb
}

// Build returns a copy of the tree built so far.
func (b *Builder) Build() (*domain.Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	return domain.Clone(b.root), nil
}

// Store builds the tree into a memory store.
func (b *Builder) Store() (*memory.Store, error) {
	root, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build memory store: %w", err)
	}
	return memory.NewStoreWith(root), nil
}
