package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/config"
	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/file"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/memory"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/postgres"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/sqlite"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/storage"
)

// NewCategoryStore opens the store selected by cfg.StoreBackend.
func NewCategoryStore(ctx context.Context, cfg *config.Config) (domain.CategoryStore, error) {
	switch cfg.StoreBackend {
	case config.StoreFile:
		log.Info().Str("dir", cfg.DataDir).Msg("Using file store")
		store, err := file.NewCategoryStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorePostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("Connected to database")
		return postgres.NewCategoryStore(pool), nil
	case config.StoreSQLite:
		log.Info().Str("path", cfg.SQLitePath).Msg("Using sqlite store")
		store, err := sqlite.NewCategoryStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreS3:
		log.Info().Str("bucket", cfg.S3.Bucket).Str("prefix", cfg.S3.Prefix).Msg("Using s3 store")
		store, err := storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreMemory:
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		return memory.NewCategoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
