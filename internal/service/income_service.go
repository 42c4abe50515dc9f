package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// IncomeService handles income entry business logic
type IncomeService struct {
	recordService
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(repo domain.BudgetRepository) *IncomeService {
	return &IncomeService{recordService: newRecordService(repo)}
}

// AddIncomeInput contains input for adding an income entry.
// AnnualPay defaults to twelve months of MonthlyPay when not valid.
type AddIncomeInput struct {
	Source     string
	MonthlyPay decimal.Decimal
	AnnualPay  decimal.NullDecimal
}

func incomeID(i domain.IncomeEntry) domain.ID { return i.ID }

// ListIncome returns every income entry
func (s *IncomeService) ListIncome(ctx context.Context) ([]domain.IncomeEntry, error) {
	return s.repo.GetIncome(ctx)
}

// AddIncome appends a new income entry
func (s *IncomeService) AddIncome(ctx context.Context, input AddIncomeInput) (*domain.IncomeEntry, error) {
	if !input.MonthlyPay.IsPositive() {
		return nil, domain.ErrAmountRequired
	}

	annual := input.MonthlyPay.Mul(domain.MonthsPerYear)
	if input.AnnualPay.Valid && input.AnnualPay.Decimal.IsPositive() {
		annual = input.AnnualPay.Decimal
	}

	entry := domain.IncomeEntry{
		ID:         domain.NewID(),
		Source:     strings.TrimSpace(input.Source),
		MonthlyPay: input.MonthlyPay,
		AnnualPay:  annual,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	income, err := s.repo.GetIncome(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveIncome(ctx, append(income, entry)); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypeIncome, entry))
	return &entry, nil
}

// DeleteIncome removes an income entry
func (s *IncomeService) DeleteIncome(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	income, err := s.repo.GetIncome(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(income, id, incomeID)
	if idx < 0 {
		return domain.ErrIncomeNotFound
	}
	if err := s.repo.SaveIncome(ctx, append(income[:idx], income[idx+1:]...)); err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypeIncome, map[string]domain.ID{"id": id}))
	return nil
}

// ToggleIncomeIgnored flips whether an entry is left out of every total
func (s *IncomeService) ToggleIncomeIgnored(ctx context.Context, id domain.ID) (*domain.IncomeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	income, err := s.repo.GetIncome(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(income, id, incomeID)
	if idx < 0 {
		return nil, domain.ErrIncomeNotFound
	}
	income[idx].IsIgnored = !income[idx].IsIgnored
	if err := s.repo.SaveIncome(ctx, income); err != nil {
		return nil, err
	}

	entry := income[idx]
	s.publishEvent(websocket.Updated(websocket.EntityTypeIncome, entry))
	return &entry, nil
}

// ReplaceIncome overwrites the whole income list
func (s *IncomeService) ReplaceIncome(ctx context.Context, income []domain.IncomeEntry) ([]domain.IncomeEntry, error) {
	for i := range income {
		if err := income[i].Validate(); err != nil {
			return nil, err
		}
	}
	assignIDs(income, func(i *domain.IncomeEntry) *domain.ID { return &i.ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveIncome(ctx, income); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryIncome)))
	return income, nil
}
