package service

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	recordService
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo domain.BudgetRepository) *ExpenseService {
	return &ExpenseService{recordService: newRecordService(repo)}
}

// ExpenseInput contains input for creating or updating an expense
type ExpenseInput struct {
	Category    string
	Name        string
	MonthlyCost decimal.Decimal
	AnnualCost  decimal.Decimal
	IsEssential bool
}

func (in ExpenseInput) apply(e *domain.Expense) {
	e.Category = strings.TrimSpace(in.Category)
	e.Name = strings.TrimSpace(in.Name)
	e.MonthlyCost = in.MonthlyCost
	e.AnnualCost = in.AnnualCost
	e.IsEssential = in.IsEssential
}

func expenseID(e domain.Expense) domain.ID { return e.ID }

// ListExpenses returns every expense in stored order
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.repo.GetExpenses(ctx)
}

// AddExpense appends a new expense
func (s *ExpenseService) AddExpense(ctx context.Context, input ExpenseInput) (*domain.Expense, error) {
	expense := domain.Expense{ID: domain.NewID()}
	input.apply(&expense)
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveExpenses(ctx, append(expenses, expense)); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Created(websocket.EntityTypeExpense, expense))
	return &expense, nil
}

// UpdateExpense replaces the editable fields of an expense. The ignored
// flag is kept.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id domain.ID, input ExpenseInput) (*domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(expenses, id, expenseID)
	if idx < 0 {
		return nil, domain.ErrExpenseNotFound
	}

	updated := expenses[idx]
	input.apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	expenses[idx] = updated
	if err := s.repo.SaveExpenses(ctx, expenses); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.Updated(websocket.EntityTypeExpense, updated))
	return &updated, nil
}

// DeleteExpense removes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(expenses, id, expenseID)
	if idx < 0 {
		return domain.ErrExpenseNotFound
	}
	if err := s.repo.SaveExpenses(ctx, append(expenses[:idx], expenses[idx+1:]...)); err != nil {
		return err
	}

	s.publishEvent(websocket.Deleted(websocket.EntityTypeExpense, map[string]domain.ID{"id": id}))
	return nil
}

// ToggleExpenseIgnored flips whether an expense is left out of every total
func (s *ExpenseService) ToggleExpenseIgnored(ctx context.Context, id domain.ID) (*domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(expenses, id, expenseID)
	if idx < 0 {
		return nil, domain.ErrExpenseNotFound
	}
	expenses[idx].IsIgnored = !expenses[idx].IsIgnored
	if err := s.repo.SaveExpenses(ctx, expenses); err != nil {
		return nil, err
	}

	expense := expenses[idx]
	s.publishEvent(websocket.Updated(websocket.EntityTypeExpense, expense))
	return &expense, nil
}

// SortExpenses stores the expenses ordered by category, then name.
// Comparison ignores case.
func (s *ExpenseService) SortExpenses(ctx context.Context) ([]domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.GetExpenses(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		ci, cj := strings.ToLower(expenses[i].Category), strings.ToLower(expenses[j].Category)
		if ci != cj {
			return ci < cj
		}
		return strings.ToLower(expenses[i].Name) < strings.ToLower(expenses[j].Name)
	})
	if err := s.repo.SaveExpenses(ctx, expenses); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryExpenses)))
	return expenses, nil
}

// ReplaceExpenses overwrites the whole expense list
func (s *ExpenseService) ReplaceExpenses(ctx context.Context, expenses []domain.Expense) ([]domain.Expense, error) {
	for i := range expenses {
		if err := expenses[i].Validate(); err != nil {
			return nil, err
		}
	}
	assignIDs(expenses, func(e *domain.Expense) *domain.ID { return &e.ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveExpenses(ctx, expenses); err != nil {
		return nil, err
	}

	s.publishEvent(websocket.CategoryReplaced(string(domain.CategoryExpenses)))
	return expenses, nil
}
