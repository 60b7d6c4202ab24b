package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// ContentRenderer turns markdown into terminal output.
type ContentRenderer func(string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
// If glamour cannot be initialized the markdown is returned unchanged.
func NewRenderer() ContentRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// HierarchyMarkdown describes the tree as a nested markdown list, one item per
// node with its advisory level and description.
func HierarchyMarkdown(root *domain.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", root.Title)
	if root.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", root.Description)
	}

	domain.Walk(root, func(n *domain.Node, depth int) bool {
		if depth == 0 {
			return true
		}
		indent := strings.Repeat("  ", depth-1)
		fmt.Fprintf(&sb, "%s- **%s** %s _(%s)_", indent, n.ID, n.Title, domain.LevelOf(n.ID))
		if n.Description != "" {
			fmt.Fprintf(&sb, ": %s", n.Description)
		}
		sb.WriteString("\n")
		return true
	})

	if len(root.Children) == 0 {
		sb.WriteString("_No entries yet._\n")
	}
	return sb.String()
}
