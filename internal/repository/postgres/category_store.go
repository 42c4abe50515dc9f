package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// CategoryStore implements domain.CategoryStore using a PostgreSQL JSONB
// column, one row per category.
type CategoryStore struct {
	pool *pgxpool.Pool
}

// NewCategoryStore creates a new CategoryStore on an existing pool
func NewCategoryStore(pool *pgxpool.Pool) *CategoryStore {
	return &CategoryStore{pool: pool}
}

// Connect opens a pool, verifies it and applies migrations.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(databaseURL); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Get retrieves the stored document of a category
func (s *CategoryStore) Get(ctx context.Context, category domain.Category) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM budget_categories WHERE name = $1`, string(category),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get %s: %w", category, err)
	}
	return data, nil
}

// Put replaces the stored document of a category
func (s *CategoryStore) Put(ctx context.Context, category domain.Category, data []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO budget_categories (name, data, updated_at) VALUES ($1, $2::jsonb, NOW())
		 ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		string(category), string(data),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", category, err)
	}
	return nil
}

// Close releases the pool
func (s *CategoryStore) Close() error {
	s.pool.Close()
	return nil
}
