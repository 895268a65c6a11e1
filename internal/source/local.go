package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/hmpi-cli/internal/utils"
)

// LocalStore implements Store on the local filesystem. Keys are paths
// relative to BaseDir, or used as-is when BaseDir is empty.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at baseDir.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(key string) string {
	if s.BaseDir == "" {
		return key
	}
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

// Get reads a file.
func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Put writes a file atomically, creating parent directories.
func (s *LocalStore) Put(ctx context.Context, key string, data []byte, _ string) error {
	p := s.path(key)
	if err := utils.EnsureDir(filepath.Dir(p)); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return utils.SafeWriteFile(p, data)
}
