package service

import (
	"context"
	"sync"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// BudgetService computes read-only views over the whole budget and serves
// the raw category documents
type BudgetService struct {
	repo           domain.BudgetRepository
	eventPublisher websocket.EventPublisher
	clock          Clock
	mu             sync.Mutex
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo, clock: domain.Today}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock replaces the clock used for derived fields
func (s *BudgetService) SetClock(clock Clock) {
	s.clock = clock
}

// Snapshot loads every category with derived fields as of today
func (s *BudgetService) Snapshot(ctx context.Context) (*domain.BudgetData, error) {
	data, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock()
	for i := range data.Loans {
		data.Loans[i] = data.Loans[i].WithDerived(today)
	}
	for i := range data.Savings.Goals {
		data.Savings.Goals[i] = data.Savings.Goals[i].WithDerived(today)
	}
	return data, nil
}

// GetSummary runs the allocation engine over the stored budget
func (s *BudgetService) GetSummary(ctx context.Context) (*domain.BudgetTotals, error) {
	data, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return CalculateTotals(NewAllocationInput(data, s.clock())), nil
}

// GetEmergencyFundStatus rates the stored emergency fund balance
func (s *BudgetService) GetEmergencyFundStatus(ctx context.Context) (*domain.EmergencyFundStatus, error) {
	data, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return GetEmergencyFundStatus(data.Expenses, data.Loans, data.Savings.EmergencyFunds, s.clock()), nil
}

// GetCategoryBreakdown sums active expenses per category
func (s *BudgetService) GetCategoryBreakdown(ctx context.Context) ([]domain.CategoryAmount, error) {
	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return GetCategoryBreakdown(expenses), nil
}

// GetAllocation splits income into spending, saving and pocket money
func (s *BudgetService) GetAllocation(ctx context.Context) (*domain.BudgetAllocation, error) {
	data, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := CalculateTotals(NewAllocationInput(data, s.clock()))
	return GetBudgetAllocation(data.Expenses, totals), nil
}

// GetOverview computes every dashboard view from a single load
func (s *BudgetService) GetOverview(ctx context.Context) (*domain.BudgetOverview, error) {
	data, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock()
	totals := CalculateTotals(NewAllocationInput(data, today))

	return &domain.BudgetOverview{
		Totals:              totals,
		EmergencyFundStatus: GetEmergencyFundStatus(data.Expenses, data.Loans, data.Savings.EmergencyFunds, today),
		CategoryBreakdown:   GetCategoryBreakdown(data.Expenses),
		Allocation:          GetBudgetAllocation(data.Expenses, totals),
	}, nil
}

// GetCategory returns the stored JSON document of a category
func (s *BudgetService) GetCategory(ctx context.Context, category domain.Category) ([]byte, error) {
	return s.repo.GetCategory(ctx, category)
}

// ReplaceCategory overwrites a category with a raw JSON document
func (s *BudgetService) ReplaceCategory(ctx context.Context, category domain.Category, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveCategory(ctx, category, raw); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.CategoryReplaced(string(category)))
	}
	return nil
}
