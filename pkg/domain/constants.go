package domain

import "strings"

// Root node identity. Every framework has exactly one root with this id.
const (
	RootID          = "T0000"
	RootTitle       = "tactics"
	RootDescription = "Methods and techniques used to execute fraudulent operations"

	// RootSentinel is the user-facing alias for the root when choosing a parent.
	RootSentinel = "root"

	// DocumentKey is the only top-level key of a framework document.
	DocumentKey = "tactics"
)

// Level is the advisory tier of a node, derived from its id prefix.
type Level string

const (
	LevelTactic    Level = "tactic"
	LevelTechnique Level = "technique"
	LevelProcedure Level = "procedure"
	LevelUnknown   Level = "unknown"
)

// LevelOf classifies an id by prefix: "TQ" technique, "T" tactic, "P" procedure.
// The convention is not enforced anywhere in the tree operations.
func LevelOf(id string) Level {
	switch {
	case strings.HasPrefix(id, "TQ"):
		return LevelTechnique
	case strings.HasPrefix(id, "T"):
		return LevelTactic
	case strings.HasPrefix(id, "P"):
		return LevelProcedure
	default:
		return LevelUnknown
	}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
