package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists one file per key under a base directory. It is the
// server-side analog of the browser-local storage the admin UI started on.
type FileStore struct {
	baseDir string
}

// NewFileStore ensures the base directory exists and returns a handle.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read collection file: %w", err)
	}
	return data, nil
}

func (s *FileStore) Write(ctx context.Context, key string, value []byte) error {
	path := s.resolve(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write collection file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace collection file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete collection file: %w", err)
	}
	return nil
}

func (s *FileStore) resolve(key string) string {
	// Keys are fixed collection names; sanitize anyway so a bad key cannot
	// escape the base directory.
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.baseDir, name+".json")
}
