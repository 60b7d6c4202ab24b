package middleware

import (
	"context"
	"fmt"

	"github.com/aretw0/ttp/pkg/domain"
	"github.com/aretw0/ttp/pkg/ports"
)

type backupMiddleware struct {
	next   ports.TreeStore
	backup ports.TreeStore
}

// NewBackupMiddleware copies the currently stored tree into backup before
// each Save overwrites it. Nothing is copied when the primary store is empty
// or its content cannot be decoded.
func NewBackupMiddleware(backup ports.TreeStore) Middleware {
	return func(next ports.TreeStore) ports.TreeStore {
		return &backupMiddleware{next: next, backup: backup}
	}
}

func (m *backupMiddleware) Load(ctx context.Context) (*domain.Node, error) {
	return m.next.Load(ctx)
}

func (m *backupMiddleware) Save(ctx context.Context, root *domain.Node) error {
	if previous, err := m.next.Load(ctx); err == nil {
		if err := m.backup.Save(ctx, previous); err != nil {
			return fmt.Errorf("failed to write backup to %s: %w", m.backup.Location(), err)
		}
	}
	return m.next.Save(ctx, root)
}

func (m *backupMiddleware) Location() string {
	return m.next.Location()
}
