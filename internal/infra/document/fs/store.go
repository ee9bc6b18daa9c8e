// Package fs persists the entity document to the local filesystem with
// whole-file atomic replace semantics.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todoseed/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.DocumentSink = (*Store)(nil)

// Store writes documents under a root directory.
type Store struct {
	root string
}

// New returns a filesystem-backed document store rooted at path, creating
// it if needed.
func New(root string) (*Store, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create root: %w", err)
	}
	return &Store{root: root}, nil
}

// sanitizeName forbids traversal and absolute paths so names stay under the
// root.
func sanitizeName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty document name")
	}
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid document name contains '..'")
	}
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid absolute document name")
	}
	return filepath.ToSlash(filepath.Clean(name)), nil
}

// Write buffers data into a temp file and renames it into place, so a crash
// before completion leaves no partial or corrupt document at the target
// name. An existing document at the same name is replaced.
func (s *Store) Write(name string, data []byte) error {
	clean, err := sanitizeName(name)
	if err != nil {
		return err
	}
	target := filepath.Join(s.root, clean)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Load reads a previously written document back, for verification.
func (s *Store) Load(name string) ([]byte, error) {
	clean, err := sanitizeName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Root returns the configured root directory.
func (s *Store) Root() string { return s.root }
