package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
	"golang.org/x/term"
)

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// loadTree loads the framework from store, falling back to the skeleton.
// The fallback is reported on w; it never stops the session.
func loadTree(ctx context.Context, store ports.TreeStore, w io.Writer, logger *slog.Logger) *domain.Node {
	root, err := ports.LoadOrSkeleton(ctx, store)
	switch {
	case err == nil:
		logger.Info("Framework Loaded", "location", store.Location(), "nodes", domain.Size(root))
	case errors.Is(err, domain.ErrDocumentNotFound):
		logger.Info("Framework Missing", "location", store.Location())
		printSystemMessage(w, "No framework at %s. Starting from a fresh skeleton.", store.Location())
	default:
		logger.Warn("Framework Unreadable", "location", store.Location(), "error", err)
		fmt.Fprintf(w, "❌  Failed to read %s: %v. Creating fresh skeleton…\n", store.Location(), err)
	}
	return root
}
