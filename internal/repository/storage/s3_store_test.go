package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/config"
	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "budget/income.json", CategoryKey("budget", domain.CategoryIncome))
	assert.Equal(t, "savings.json", CategoryKey("", domain.CategorySavings))
}

func TestBackupKey(t *testing.T) {
	at := time.Date(2026, time.March, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "backups/20260304T040607Z/loans.json", BackupKey("backups", at, domain.CategoryLoans))
}

// Runs against MinIO or S3 when TEST_S3_ENDPOINT is set.
func TestS3Store_Integration(t *testing.T) {
	endpoint := os.Getenv("TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("TEST_S3_ENDPOINT not set")
	}

	ctx := context.Background()
	store, err := NewS3Store(ctx, config.S3Config{
		Region:          "us-east-1",
		Bucket:          "budget-test",
		Prefix:          "it-" + time.Now().Format("150405"),
		AccessKeyID:     os.Getenv("TEST_S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("TEST_S3_SECRET_ACCESS_KEY"),
		Endpoint:        endpoint,
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, domain.CategoryExpenses)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.NoError(t, store.Put(ctx, domain.CategoryExpenses, []byte(`[]`)))
	got, err := store.Get(ctx, domain.CategoryExpenses)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
