package domain

// Node is a single taxonomy entry.
// Children are serialized under the "items" key, which is the on-disk name
// used by existing framework files.
type Node struct {
	ID          string  `json:"id" yaml:"id" mapstructure:"id"`
	Title       string  `json:"title" yaml:"title" mapstructure:"title"`
	Description string  `json:"description" yaml:"description" mapstructure:"description"`
	Children    []*Node `json:"items" yaml:"items" mapstructure:"items"`
}

// Document is the top-level shape of a framework file: a single "tactics" key
// mapping to the root node.
type Document struct {
	Tactics *Node `json:"tactics" yaml:"tactics" mapstructure:"tactics"`
}

// NewNode creates a leaf node. Children is never nil so that an empty list is
// written as [] rather than null.
func NewNode(id, title, description string) *Node {
	return &Node{
		ID:          id,
		Title:       title,
		Description: description,
		Children:    []*Node{},
	}
}

// NewSkeleton returns the root-only tree used when no valid file exists.
func NewSkeleton() *Node {
	return NewNode(RootID, RootTitle, RootDescription)
}

// IsRootRef reports whether ref names the root, either by the "root"
// sentinel or by the root id. Both comparisons ignore case.
func IsRootRef(ref string) bool {
	return equalFold(ref, RootSentinel) || equalFold(ref, RootID)
}
