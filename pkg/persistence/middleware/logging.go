package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.TreeStore
	logger *slog.Logger
}

// NewLoggingMiddleware records every Load and Save at debug level, with the
// node count and elapsed time.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.TreeStore) ports.TreeStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Load(ctx context.Context) (*domain.Node, error) {
	start := time.Now()
	root, err := m.next.Load(ctx)
	attrs := []any{"location", m.next.Location(), "elapsed", time.Since(start)}
	if err != nil {
		m.logger.Debug("Load failed", append(attrs, "error", err)...)
		return nil, err
	}
	m.logger.Debug("Loaded framework", append(attrs, "nodes", domain.Size(root))...)
	return root, nil
}

func (m *loggingMiddleware) Save(ctx context.Context, root *domain.Node) error {
	start := time.Now()
	err := m.next.Save(ctx, root)
	attrs := []any{"location", m.next.Location(), "nodes", domain.Size(root), "elapsed", time.Since(start)}
	if err != nil {
		m.logger.Error("Save failed", append(attrs, "error", err)...)
		return err
	}
	m.logger.Debug("Saved framework", attrs...)
	return nil
}

func (m *loggingMiddleware) Location() string {
	return m.next.Location()
}
