package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ttp/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the hierarchy, one edge per
// parent/child link. Node shapes follow the advisory level:
// - Root: ((Circle))
// - Tactic: [Rectangle]
// - Technique: ([Stadium])
// - Procedure: [[Subroutine]]
// - Unknown prefix: {{Hexagon}}
//
// Mermaid keys are assigned by pre-order position (n0, n1, ...), so ids with
// punctuation or duplicates still produce one graph node per tree node. The id
// is shown in the label only.
func GenerateMermaid(root *domain.Node) string {
	keys := make(map[*domain.Node]string)
	domain.Walk(root, func(n *domain.Node, _ int) bool {
		keys[n] = fmt.Sprintf("n%d", len(keys))
		return true
	})

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	domain.Walk(root, func(n *domain.Node, depth int) bool {
		opener, closer := shapeFor(n, depth)
		label := escapeLabel(n.ID + " " + n.Title)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", keys[n], opener, label, closer))

		for _, child := range n.Children {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", keys[n], keys[child]))
		}
		return true
	})

	return sb.String()
}

func shapeFor(n *domain.Node, depth int) (string, string) {
	if depth == 0 {
		return "((", "))"
	}
	switch domain.LevelOf(n.ID) {
	case domain.LevelTactic:
		return "[", "]"
	case domain.LevelTechnique:
		return "([", "])"
	case domain.LevelProcedure:
		return "[[", "]]"
	default:
		return "{{", "}}"
	}
}

// escapeLabel keeps quotes from terminating the quoted label.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
