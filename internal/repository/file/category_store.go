package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// CategoryStore keeps each category in <dir>/<category>.json. Writes go to a
// temporary file that is renamed over the old one.
type CategoryStore struct {
	dir string
	mu  sync.RWMutex
}

// NewCategoryStore creates dir if needed.
func NewCategoryStore(dir string) (*CategoryStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &CategoryStore{dir: dir}, nil
}

func (s *CategoryStore) path(category domain.Category) string {
	return filepath.Join(s.dir, string(category)+".json")
}

func (s *CategoryStore) Get(_ context.Context, category domain.Category) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(category))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", category, err)
	}
	return data, nil
}

func (s *CategoryStore) Put(_ context.Context, category domain.Category, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+string(category)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", category, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", category, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", category, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", category, err)
	}
	if err := os.Rename(tmpName, s.path(category)); err != nil {
		return fmt.Errorf("replace %s: %w", category, err)
	}
	return nil
}

func (s *CategoryStore) Close() error {
	return nil
}
