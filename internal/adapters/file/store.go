package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aretw0/ttp/pkg/codec"
	"github.com/aretw0/ttp/pkg/domain"
)

// DefaultPath is the framework file used when no path is given.
const DefaultPath = "dataset.json"

// Store implements ports.TreeStore on a single local file.
// The encoding (JSON or YAML) is chosen from the file extension.
type Store struct {
	Path   string
	Format codec.Format
}

// New creates a Store for path. If path is empty, it defaults to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path, Format: codec.FormatFor(path)}
}

// Location returns the absolute path of the file when it can be resolved.
func (s *Store) Location() string {
	if abs, err := filepath.Abs(s.Path); err == nil {
		return abs
	}
	return s.Path
}

// Load reads and decodes the framework file.
func (s *Store) Load(ctx context.Context) (*domain.Node, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read framework file: %w", err)
	}

	root, err := codec.Decode(data, s.Format)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// fileMode keeps the permissions of an existing file; new files get 0644.
func (s *Store) fileMode() fs.FileMode {
	if info, err := os.Stat(s.Path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0644
}

// Save writes the whole tree to the file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, root *domain.Node) error {
	data, err := codec.Encode(root, s.Format)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory: %w", err)
	}

	// Same directory, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, s.fileMode()); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if runtime.GOOS == "windows" {
		if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove existing file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
