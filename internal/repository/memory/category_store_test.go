package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

func TestCategoryStore(t *testing.T) {
	store := NewCategoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, domain.CategorySavings)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	payload := []byte(`{"emergency_funds":100}`)
	require.NoError(t, store.Put(ctx, domain.CategorySavings, payload))
	payload[0] = 'X'

	got, err := store.Get(ctx, domain.CategorySavings)
	require.NoError(t, err)
	assert.Equal(t, `{"emergency_funds":100}`, string(got))

	got[0] = 'Y'
	again, err := store.Get(ctx, domain.CategorySavings)
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again[0])
}
