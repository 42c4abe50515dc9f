package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// CategoryStore keeps each category as one row of the budget_categories
// table in a local SQLite database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore opens (creating if needed) the database at dbPath and
// migrates it.
func NewCategoryStore(dbPath string) (*CategoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &CategoryStore{db: db}, nil
}

func (s *CategoryStore) Get(ctx context.Context, category domain.Category) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM budget_categories WHERE name = ?`, string(category),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", category, err)
	}
	return []byte(data), nil
}

func (s *CategoryStore) Put(ctx context.Context, category domain.Category, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budget_categories (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(category), string(data),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", category, err)
	}
	return nil
}

func (s *CategoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
