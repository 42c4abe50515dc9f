package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// Runs against a real database when TEST_DATABASE_URL is set.
func TestCategoryStore_Integration(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, databaseURL)
	require.NoError(t, err)
	store := NewCategoryStore(pool)
	defer store.Close()

	_, err = pool.Exec(ctx, `DELETE FROM budget_categories`)
	require.NoError(t, err)

	_, err = store.Get(ctx, domain.CategoryIncome)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.NoError(t, store.Put(ctx, domain.CategoryIncome, []byte(`[{"id":"a","monthly_pay":100}]`)))
	require.NoError(t, store.Put(ctx, domain.CategoryIncome, []byte(`[{"id":"b","monthly_pay":200}]`)))

	got, err := store.Get(ctx, domain.CategoryIncome)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b","monthly_pay":200}]`, string(got))
}
