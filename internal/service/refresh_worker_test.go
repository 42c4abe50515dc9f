package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/testutil"
)

type stubRefresher struct {
	loans, goals int
	err          error
}

func (s *stubRefresher) RefreshLoans(ctx context.Context) (int, error) { return s.loans, s.err }
func (s *stubRefresher) RefreshGoals(ctx context.Context) (int, error) { return s.goals, s.err }

func setupRefreshWorker(stub *stubRefresher) (*RefreshWorker, *testutil.MockPublisher) {
	worker := NewRefreshWorker(stub, stub, zerolog.Nop(), RefreshWorkerConfig{
		Interval: 100 * time.Millisecond, // Fast interval for testing
	})
	publisher := testutil.NewMockPublisher()
	worker.SetEventPublisher(publisher)
	return worker, publisher
}

func TestRefreshWorker_DefaultsForInvalidConfig(t *testing.T) {
	worker := NewRefreshWorker(&stubRefresher{}, &stubRefresher{}, zerolog.Nop(), RefreshWorkerConfig{})

	assert.Equal(t, 1*time.Hour, worker.interval)
	assert.False(t, worker.IsRunning())
}

func TestRefreshWorker_RefreshNowPublishesWhenChanged(t *testing.T) {
	worker, publisher := setupRefreshWorker(&stubRefresher{loans: 2, goals: 1})

	result := worker.RefreshNow(context.Background())

	assert.Equal(t, RefreshResult{Loans: 2, Goals: 1}, result)
	assert.Equal(t, []string{"budget.refreshed"}, publisher.Types())
}

func TestRefreshWorker_RefreshNowQuietWhenUnchanged(t *testing.T) {
	worker, publisher := setupRefreshWorker(&stubRefresher{})

	worker.RefreshNow(context.Background())
	assert.Empty(t, publisher.Events)
}

func TestRefreshWorker_RefreshNowSurvivesErrors(t *testing.T) {
	worker, publisher := setupRefreshWorker(&stubRefresher{loans: 3, err: errors.New("boom")})

	result := worker.RefreshNow(context.Background())
	assert.Equal(t, RefreshResult{}, result)
	assert.Empty(t, publisher.Events)
}

func TestRefreshWorker_StartStop(t *testing.T) {
	worker, _ := setupRefreshWorker(&stubRefresher{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start twice, second call is a no-op
	worker.Start(ctx)
	worker.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	assert.True(t, worker.IsRunning())

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestRefreshWorker_StopWithoutStart(t *testing.T) {
	worker, _ := setupRefreshWorker(&stubRefresher{})

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestRefreshWorker_ContextCancellation(t *testing.T) {
	worker, _ := setupRefreshWorker(&stubRefresher{})
	ctx, cancel := context.WithCancel(context.Background())

	worker.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	require.True(t, worker.IsRunning())

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.False(t, worker.IsRunning())
}
