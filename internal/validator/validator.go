package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/ttp/pkg/domain"
)

// ValidateTree reports problems the editor itself tolerates: duplicate or empty
// ids, a non-standard root, and nodes whose id prefix does not fit the
// tactic → technique → procedure convention for their position.
// It never modifies the tree.
func ValidateTree(root *domain.Node) error {
	if root == nil {
		return fmt.Errorf("tree is empty")
	}

	var errors []string

	if root.ID != domain.RootID {
		errors = append(errors, fmt.Sprintf("Root id is '%s', expected '%s'", root.ID, domain.RootID))
	}

	seen := make(map[string]int)
	var check func(parent, n *domain.Node)
	check = func(parent, n *domain.Node) {
		if strings.TrimSpace(n.ID) == "" {
			errors = append(errors, fmt.Sprintf("Node titled '%s' under '%s' has an empty id", n.Title, parent.ID))
		} else {
			seen[n.ID]++
			if seen[n.ID] == 2 {
				errors = append(errors, fmt.Sprintf("Duplicate id: '%s'", n.ID))
			}
		}

		if msg := checkPlacement(parent, n); msg != "" {
			errors = append(errors, msg)
		}

		for _, child := range n.Children {
			check(n, child)
		}
	}

	seen[root.ID]++
	for _, child := range root.Children {
		check(root, child)
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

// checkPlacement applies the prefix convention:
// tactics sit under the root, techniques under tactics or techniques,
// procedures under techniques, and procedures are leaves.
func checkPlacement(parent, n *domain.Node) string {
	level := domain.LevelOf(n.ID)
	parentLevel := domain.LevelOf(parent.ID)
	if parent.ID == domain.RootID {
		parentLevel = ""
	}

	switch level {
	case domain.LevelUnknown:
		if n.ID == "" {
			return ""
		}
		return fmt.Sprintf("'%s' does not use a T, TQ or P prefix", n.ID)
	case domain.LevelTactic:
		if parentLevel != "" {
			return fmt.Sprintf("Tactic '%s' should sit under the root, found under '%s'", n.ID, parent.ID)
		}
	case domain.LevelTechnique:
		if parentLevel != domain.LevelTactic && parentLevel != domain.LevelTechnique {
			return fmt.Sprintf("Technique '%s' should sit under a tactic or technique, found under '%s'", n.ID, parent.ID)
		}
	case domain.LevelProcedure:
		if parentLevel != domain.LevelTechnique {
			return fmt.Sprintf("Procedure '%s' should sit under a technique, found under '%s'", n.ID, parent.ID)
		}
		if len(n.Children) > 0 {
			return fmt.Sprintf("Procedure '%s' should not have children", n.ID)
		}
	}
	return ""
}
