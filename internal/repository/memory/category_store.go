package memory

import (
	"context"
	"sync"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// CategoryStore holds categories in process memory. Nothing survives a
// restart.
type CategoryStore struct {
	mu   sync.RWMutex
	data map[domain.Category][]byte
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{data: make(map[domain.Category][]byte)}
}

func (s *CategoryStore) Get(_ context.Context, category domain.Category) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[category]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *CategoryStore) Put(_ context.Context, category domain.Category, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[category] = append([]byte(nil), data...)
	return nil
}

func (s *CategoryStore) Close() error {
	return nil
}
