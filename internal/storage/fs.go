package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSStore keeps blobs on the local filesystem under a fixed root directory.
// Paths are namespaced by company and employee id; resolveKey rejects
// anything that would escape the root.
type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		return nil, fmt.Errorf("blob root directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{root: abs}, nil
}

func (s *FSStore) resolveKey(key string) (string, error) {
	// Keys are forward-slash relative paths; anything that cleans to a
	// different path, is absolute, or climbs out of the root is refused
	// rather than silently rewritten.
	if key == "" || path.IsAbs(key) || path.Clean(key) != key {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	full := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return full, nil
}

func (s *FSStore) Save(ctx context.Context, key string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	full, err := s.resolveKey(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return 0, err
	}

	f, err := os.Create(full)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(full)
		return 0, err
	}
	return n, nil
}

func (s *FSStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := s.resolveKey(key)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (s *FSStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolveKey(key)
	if err != nil {
		return err
	}
	return os.Remove(full)
}
