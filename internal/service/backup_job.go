package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/storage"
)

// BackupStore receives category snapshots under arbitrary keys
type BackupStore interface {
	PutObject(ctx context.Context, key string, data []byte) error
}

// BackupJob copies every stored category to a BackupStore on a cron schedule
type BackupJob struct {
	repo     domain.BudgetRepository
	store    BackupStore
	prefix   string
	schedule string
	logger   zerolog.Logger
	cron     *cron.Cron
	now      func() time.Time
}

// NewBackupJob creates a backup job. The schedule uses the standard five
// field cron syntax or descriptors such as "@daily".
func NewBackupJob(repo domain.BudgetRepository, store BackupStore, prefix, schedule string, logger zerolog.Logger) (*BackupJob, error) {
	j := &BackupJob{
		repo:     repo,
		store:    store,
		prefix:   prefix,
		schedule: schedule,
		logger:   logger.With().Str("component", "backup_job").Logger(),
		cron:     cron.New(cron.WithLocation(time.UTC)),
		now:      time.Now,
	}

	// An empty schedule leaves only manual backups.
	if schedule == "" {
		return j, nil
	}
	_, err := j.cron.AddFunc(schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error().Err(err).Msg("Backup failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Start begins running backups on schedule
func (j *BackupJob) Start() {
	if j.schedule == "" {
		return
	}
	j.logger.Info().Str("schedule", j.schedule).Str("prefix", j.prefix).Msg("Starting backup job")
	j.cron.Start()
}

// Stop waits for a running backup to finish and stops the schedule
func (j *BackupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("Backup job stopped")
}

// Run takes one backup now and returns the keys written
func (j *BackupJob) Run(ctx context.Context) ([]string, error) {
	at := j.now()
	keys := make([]string, 0, len(domain.Categories))

	for _, category := range domain.Categories {
		data, err := j.repo.GetCategory(ctx, category)
		if err != nil {
			return keys, fmt.Errorf("read %s: %w", category, err)
		}
		key := storage.BackupKey(j.prefix, at, category)
		if err := j.store.PutObject(ctx, key, data); err != nil {
			return keys, fmt.Errorf("write %s: %w", key, err)
		}
		keys = append(keys, key)
	}

	j.logger.Info().Int("categories", len(keys)).Time("at", at).Msg("Backup completed")
	return keys, nil
}
