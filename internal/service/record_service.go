package service

import (
	"sync"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// Clock returns the current calendar day.
type Clock func() domain.Date

// recordService holds what every per-category service shares. Mutations
// load the category, change a copy and save the whole category back while
// holding mu.
type recordService struct {
	repo           domain.BudgetRepository
	eventPublisher websocket.EventPublisher
	clock          Clock
	mu             sync.Mutex
}

func newRecordService(repo domain.BudgetRepository) recordService {
	return recordService{repo: repo, clock: domain.Today}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *recordService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock replaces the clock used for derived fields
func (s *recordService) SetClock(clock Clock) {
	s.clock = clock
}

// publishEvent publishes an event if a publisher is configured
func (s *recordService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

func (s *recordService) today() domain.Date {
	return s.clock()
}

// indexOf returns the position of the element whose id matches, or -1
func indexOf[T any](items []T, id domain.ID, idOf func(T) domain.ID) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// assignIDs gives every element without an id a fresh one
func assignIDs[T any](items []T, idOf func(*T) *domain.ID) {
	for i := range items {
		if id := idOf(&items[i]); *id == "" {
			*id = domain.NewID()
		}
	}
}
