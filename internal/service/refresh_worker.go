package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// LoanRefresher recomputes cached loan progress and completion
type LoanRefresher interface {
	RefreshLoans(ctx context.Context) (int, error)
}

// GoalRefresher recomputes cached goal contributions and progress
type GoalRefresher interface {
	RefreshGoals(ctx context.Context) (int, error)
}

// RefreshResult counts the records a refresh pass rewrote
type RefreshResult struct {
	Loans int `json:"loans"`
	Goals int `json:"goals"`
}

// RefreshWorker is a background worker that keeps cached derived fields
// current as days pass
type RefreshWorker struct {
	loans          LoanRefresher
	goals          GoalRefresher
	eventPublisher websocket.EventPublisher
	logger         zerolog.Logger
	interval       time.Duration
	stopCh         chan struct{}
	doneCh         chan struct{}
	mu             sync.Mutex
	running        bool
}

// RefreshWorkerConfig holds configuration for the refresh worker
type RefreshWorkerConfig struct {
	Interval time.Duration // How often to refresh derived fields
}

// DefaultRefreshWorkerConfig returns sensible defaults
func DefaultRefreshWorkerConfig() RefreshWorkerConfig {
	return RefreshWorkerConfig{Interval: 1 * time.Hour}
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(
	loans LoanRefresher,
	goals GoalRefresher,
	logger zerolog.Logger,
	config RefreshWorkerConfig,
) *RefreshWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultRefreshWorkerConfig().Interval
	}

	return &RefreshWorker{
		loans:    loans,
		goals:    goals,
		logger:   logger.With().Str("component", "refresh_worker").Logger(),
		interval: config.Interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// SetEventPublisher sets the event publisher notified after a refresh
// that changed anything
func (w *RefreshWorker) SetEventPublisher(publisher websocket.EventPublisher) {
	w.eventPublisher = publisher
}

// Start begins the background refresh
func (w *RefreshWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().
		Dur("interval", w.interval).
		Msg("Starting refresh worker")

	go w.run(ctx)
}

// Stop gracefully stops the refresh worker
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping refresh worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Refresh worker stopped")
}

// run is the main loop for the refresh worker
func (w *RefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	// Run immediately on startup
	w.RefreshNow(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.RefreshNow(ctx)
		}
	}
}

// RefreshNow runs one refresh pass. Failures are logged and the pass
// carries on with the next category.
func (w *RefreshWorker) RefreshNow(ctx context.Context) RefreshResult {
	startTime := time.Now()
	var result RefreshResult

	if n, err := w.loans.RefreshLoans(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Failed to refresh loans")
	} else {
		result.Loans = n
	}

	if n, err := w.goals.RefreshGoals(ctx); err != nil {
		w.logger.Error().Err(err).Msg("Failed to refresh savings goals")
	} else {
		result.Goals = n
	}

	if result.Loans > 0 || result.Goals > 0 {
		if w.eventPublisher != nil {
			w.eventPublisher.Publish(websocket.BudgetRefreshed(result))
		}
	}

	w.logger.Debug().
		Int("loans", result.Loans).
		Int("goals", result.Goals).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed refresh")

	return result
}

// IsRunning returns whether the worker is currently running
func (w *RefreshWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
