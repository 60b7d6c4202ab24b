package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ttp"
	"github.com/aretw0/ttp/internal/adapters/file"
	"github.com/aretw0/ttp/internal/logging"
	"github.com/aretw0/ttp/internal/presentation/graph"
	"github.com/aretw0/ttp/internal/presentation/tui"
	"github.com/aretw0/ttp/internal/validator"
	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/persistence/middleware"
	"github.com/aretw0/ttp/pkg/ports"
)

// RunOptions contains all the configuration for the edit command.
type RunOptions struct {
	Path     string
	Debug    bool
	NoBanner bool
	// Backup keeps the previous version of the file next to it as <path>.bak.
	Backup bool

	// In and Out default to Stdin and Stdout.
	In  io.Reader
	Out io.Writer
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// Execute runs an interactive editing session over the framework file.
// Interrupts (signal or closed input) end the session with a farewell and a
// nil error; only save failures are returned.
func Execute(opts RunOptions) error {
	opts.defaults()
	logger := logging.ForDebug(opts.Debug)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if !opts.NoBanner && isTerminal(opts.Out) {
		tui.PrintBanner(opts.Out, ttp.Version)
	}

	store := openStore(opts, logger)
	tree := loadTree(sigCtx, store, opts.Out, logger)

	prompt := NewPrompter(opts.In, opts.Out)
	defer prompt.Close()

	session := NewSession(tree, store, prompt,
		WithOutput(opts.Out),
		WithLogger(logger),
	)

	final, err := session.Run(sigCtx)
	logger.Debug("Session Ended", "state", final, "signal", sigCtx.Signal(), "error", err)

	return sigCtx.Farewell(opts.Out, err)
}

func openStore(opts RunOptions, logger *slog.Logger) ports.TreeStore {
	primary := file.New(opts.Path)
	mws := []middleware.Middleware{middleware.NewLoggingMiddleware(logger)}
	if opts.Backup {
		backup := &file.Store{Path: primary.Path + ".bak", Format: primary.Format}
		mws = append(mws, middleware.NewBackupMiddleware(backup))
	}
	return middleware.Chain(primary, mws...)
}

// ShowOptions configures the show command.
type ShowOptions struct {
	Path string
	Rich bool
	Out  io.Writer
}

// Show prints the hierarchy without starting a session.
func Show(opts ShowOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	tree, err := file.New(opts.Path).Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load framework: %w", err)
	}

	if opts.Rich {
		rendered, err := tui.NewRenderer()(tui.HierarchyMarkdown(tree))
		if err != nil {
			return fmt.Errorf("failed to render hierarchy: %w", err)
		}
		fmt.Fprint(opts.Out, rendered)
		return nil
	}

	for line := range domain.Render(tree) {
		fmt.Fprintln(opts.Out, line)
	}
	return nil
}

// Graph prints the hierarchy as a Mermaid flowchart.
func Graph(path string, w io.Writer) error {
	tree, err := file.New(path).Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load framework: %w", err)
	}
	fmt.Fprint(w, graph.GenerateMermaid(tree))
	return nil
}

// Validate checks the framework file against the id conventions.
func Validate(path string) error {
	tree, err := file.New(path).Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load framework: %w", err)
	}
	return validator.ValidateTree(tree)
}
