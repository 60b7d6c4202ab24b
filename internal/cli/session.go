package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/ttp/internal/logging"
	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
)

// State is a step of the editing session.
type State int

const (
	StateMenu State = iota
	StateView
	StateAdd
	StateDelete
	StateSaveExit
	StateDiscardExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateView:
		return "view"
	case StateAdd:
		return "add"
	case StateDelete:
		return "delete"
	case StateSaveExit:
		return "save_exit"
	case StateDiscardExit:
		return "discard_exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the session ends in this state.
func (s State) Terminal() bool {
	return s == StateSaveExit || s == StateDiscardExit
}

const menuText = `
1. Show current hierarchy
2. Add new entry (Tactic / Technique / Procedure)
3. Delete entry (and all its children)
4. Save & exit
5. Exit without saving
`

var menuChoices = map[string]State{
	"1": StateView,
	"2": StateAdd,
	"3": StateDelete,
	"4": StateSaveExit,
	"5": StateDiscardExit,
}

// Session is one interactive editing session over a framework tree.
// All mutations of the tree go through the domain tree operations.
type Session struct {
	Tree *domain.Node

	store  ports.TreeStore
	prompt *Prompter
	out    io.Writer
	logger *slog.Logger
	dirty  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithOutput sets where menus and reports are written.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.out = w
	}
}

// NewSession creates a session editing tree, persisting to store on save.
func NewSession(tree *domain.Node, store ports.TreeStore, prompt *Prompter, opts ...SessionOption) *Session {
	s := &Session{
		Tree:   tree,
		store:  store,
		prompt: prompt,
		out:    os.Stdout,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dirty reports whether the tree changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Run drives the menu until a terminal state is reached and returns it.
// Prompt errors (cancellation, closed input) and save failures end the
// session and are returned as is.
func (s *Session) Run(ctx context.Context) (State, error) {
	state := StateMenu
	for {
		s.logger.Debug("Enter State", "state", state)

		var err error
		switch state {
		case StateMenu:
			state, err = s.Menu(ctx)
		case StateView:
			s.View()
			state = StateMenu
		case StateAdd:
			err = s.Add(ctx)
			state = StateMenu
		case StateDelete:
			err = s.Delete(ctx)
			state = StateMenu
		case StateSaveExit:
			return state, s.Save(ctx)
		case StateDiscardExit:
			s.Discard()
			return state, nil
		}

		if err != nil {
			return state, err
		}
	}
}

// Menu shows the options and returns the chosen state.
// Unrecognized input keeps the session in StateMenu.
func (s *Session) Menu(ctx context.Context) (State, error) {
	fmt.Fprint(s.out, menuText)
	choice, err := s.prompt.Ask(ctx, "Select an option [1-5]: ")
	if err != nil {
		return StateMenu, err
	}

	next, ok := menuChoices[choice]
	if !ok {
		fmt.Fprintln(s.out, "Invalid option. Please choose 1-5.")
		return StateMenu, nil
	}
	return next, nil
}

// View prints the current hierarchy.
func (s *Session) View() {
	fmt.Fprint(s.out, "\nCurrent hierarchy:\n\n")
	for line := range domain.Render(s.Tree) {
		fmt.Fprintln(s.out, line)
	}
}

// Add runs the add-entry protocol: resolve a parent (creating it under the
// root on request), then append a new child with the entered fields.
func (s *Session) Add(ctx context.Context) error {
	s.View()
	parentID, err := s.prompt.Ask(ctx, "\nParent ID (or 'root' for top-level): ")
	if err != nil {
		return err
	}

	parent, err := s.resolveParent(ctx, parentID)
	if err != nil || parent == nil {
		return err
	}

	fmt.Fprintf(s.out, "\nEnter details for new entry under %s:\n", parent.ID)
	entry, err := s.promptEntry(ctx, "")
	if err != nil {
		return err
	}

	domain.Append(parent, entry)
	s.dirty = true
	s.logger.Info("Entry Added", "id", entry.ID, "parent", parent.ID)
	fmt.Fprintf(s.out, "\n✅  Added %s under %s\n\n", entry.ID, parent.ID)
	return nil
}

// resolveParent returns the node new entries go under, or nil if the user
// declined to create a missing parent.
func (s *Session) resolveParent(ctx context.Context, parentID string) (*domain.Node, error) {
	if strings.EqualFold(parentID, domain.RootSentinel) {
		return s.Tree, nil
	}
	if parent := domain.Find(s.Tree, parentID); parent != nil {
		return parent, nil
	}

	create, err := s.prompt.Confirm(ctx, fmt.Sprintf("ID '%s' not found. Create it? (y/n): ", parentID))
	if err != nil {
		return nil, err
	}
	if !create {
		fmt.Fprint(s.out, "Aborted.\n\n")
		return nil, nil
	}

	fmt.Fprintf(s.out, "\nEnter details for new parent '%s':\n", parentID)
	parent, err := s.promptEntry(ctx, parentID)
	if err != nil {
		return nil, err
	}

	domain.Append(s.Tree, parent)
	s.dirty = true
	s.logger.Info("Parent Created", "id", parent.ID)
	fmt.Fprintf(s.out, "✅  Created parent '%s'.\n", parentID)
	return parent, nil
}

// promptEntry asks for the fields of a new node. When id is given it is used
// as is and only title and description are asked.
func (s *Session) promptEntry(ctx context.Context, id string) (*domain.Node, error) {
	var err error
	if id == "" {
		if id, err = s.prompt.Ask(ctx, "  > New ID: "); err != nil {
			return nil, err
		}
	} else {
		fmt.Fprintf(s.out, "  > Using ID: %s\n", id)
	}

	title, err := s.prompt.Ask(ctx, "  > Title: ")
	if err != nil {
		return nil, err
	}
	description, err := s.prompt.Ask(ctx, "  > Description: ")
	if err != nil {
		return nil, err
	}

	return domain.NewNode(id, title, description), nil
}

// Delete runs the delete-entry protocol. The root can never be deleted and
// every deletion needs an explicit "y".
func (s *Session) Delete(ctx context.Context) error {
	s.View()
	targetID, err := s.prompt.Ask(ctx, "\nEnter the ID to DELETE (cannot delete root): ")
	if err != nil {
		return err
	}

	if domain.IsRootRef(targetID) {
		fmt.Fprint(s.out, "❌  Cannot delete the root node.\n\n")
		return nil
	}

	confirmed, err := s.prompt.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete '%s' and all nested items? (y/n): ", targetID))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprint(s.out, "Deletion cancelled.\n\n")
		return nil
	}

	if !domain.Remove(s.Tree, targetID) {
		fmt.Fprintf(s.out, "❌  ID '%s' not found.\n\n", targetID)
		return nil
	}

	s.dirty = true
	s.logger.Info("Entry Deleted", "id", targetID)
	fmt.Fprintf(s.out, "✅  Deleted '%s'.\n\n", targetID)
	return nil
}

// Save persists the tree. Failures are returned, not recovered.
func (s *Session) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.Tree); err != nil {
		s.logger.Error("Save Failed", "location", s.store.Location(), "error", err)
		return fmt.Errorf("failed to save framework to %s: %w", s.store.Location(), err)
	}
	s.dirty = false
	fmt.Fprintf(s.out, "\n✅  Saved framework to %s\n", s.store.Location())
	return nil
}

// Discard ends the session without persisting anything.
func (s *Session) Discard() {
	if s.dirty {
		fmt.Fprintln(s.out, "Discarding unsaved changes.")
	}
	fmt.Fprintln(s.out, "Exiting without saving…")
}
