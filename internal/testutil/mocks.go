package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// MockBudgetRepository is an in-memory implementation of domain.BudgetRepository.
// Setting LoadErr or SaveErr makes every read or write fail.
type MockBudgetRepository struct {
	mu      sync.Mutex
	Data    domain.BudgetData
	LoadErr error
	SaveErr error
	Saves   map[domain.Category]int
}

// NewMockBudgetRepository creates a repository holding default categories
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Data: domain.BudgetData{
			Income:      []domain.IncomeEntry{},
			Expenses:    []domain.Expense{},
			Loans:       []domain.Loan{},
			Savings:     *domain.DefaultSavings(),
			Investments: *domain.DefaultInvestments(),
		},
		Saves: make(map[domain.Category]int),
	}
}

// LoadAll returns a deep-enough copy of the stored data
func (m *MockBudgetRepository) LoadAll(ctx context.Context) (*domain.BudgetData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	data := m.copyData()
	return &data, nil
}

func (m *MockBudgetRepository) GetIncome(ctx context.Context) ([]domain.IncomeEntry, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return data.Income, nil
}

func (m *MockBudgetRepository) GetExpenses(ctx context.Context) ([]domain.Expense, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return data.Expenses, nil
}

func (m *MockBudgetRepository) GetLoans(ctx context.Context) ([]domain.Loan, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return data.Loans, nil
}

func (m *MockBudgetRepository) GetSavings(ctx context.Context) (*domain.Savings, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &data.Savings, nil
}

func (m *MockBudgetRepository) GetInvestments(ctx context.Context) (*domain.Investments, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &data.Investments, nil
}

func (m *MockBudgetRepository) SaveIncome(ctx context.Context, income []domain.IncomeEntry) error {
	return m.save(domain.CategoryIncome, func(d *domain.BudgetData) {
		d.Income = append([]domain.IncomeEntry{}, income...)
	})
}

func (m *MockBudgetRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	return m.save(domain.CategoryExpenses, func(d *domain.BudgetData) {
		d.Expenses = append([]domain.Expense{}, expenses...)
	})
}

func (m *MockBudgetRepository) SaveLoans(ctx context.Context, loans []domain.Loan) error {
	return m.save(domain.CategoryLoans, func(d *domain.BudgetData) {
		d.Loans = append([]domain.Loan{}, loans...)
	})
}

func (m *MockBudgetRepository) SaveSavings(ctx context.Context, savings *domain.Savings) error {
	return m.save(domain.CategorySavings, func(d *domain.BudgetData) {
		d.Savings = *savings
		d.Savings.Goals = append([]domain.SavingsGoal{}, savings.Goals...)
	})
}

func (m *MockBudgetRepository) SaveInvestments(ctx context.Context, investments *domain.Investments) error {
	return m.save(domain.CategoryInvestments, func(d *domain.BudgetData) {
		d.Investments = domain.Investments{
			Investments: append([]domain.InvestmentAccount{}, investments.Investments...),
			Pensions:    append([]domain.PensionAccount{}, investments.Pensions...),
		}
	})
}

// SaveCategory decodes raw JSON and stores it through the typed setters
func (m *MockBudgetRepository) SaveCategory(ctx context.Context, category domain.Category, raw []byte) error {
	switch category {
	case domain.CategoryIncome:
		var v []domain.IncomeEntry
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return m.SaveIncome(ctx, v)
	case domain.CategoryExpenses:
		var v []domain.Expense
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return m.SaveExpenses(ctx, v)
	case domain.CategoryLoans:
		var v []domain.Loan
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return m.SaveLoans(ctx, v)
	case domain.CategorySavings:
		v := domain.DefaultSavings()
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return m.SaveSavings(ctx, v)
	case domain.CategoryInvestments:
		v := domain.DefaultInvestments()
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return m.SaveInvestments(ctx, v)
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
}

// GetCategory encodes the stored category as JSON
func (m *MockBudgetRepository) GetCategory(ctx context.Context, category domain.Category) ([]byte, error) {
	data, err := m.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	switch category {
	case domain.CategoryIncome:
		return json.Marshal(data.Income)
	case domain.CategoryExpenses:
		return json.Marshal(data.Expenses)
	case domain.CategoryLoans:
		return json.Marshal(data.Loans)
	case domain.CategorySavings:
		return json.Marshal(data.Savings)
	case domain.CategoryInvestments:
		return json.Marshal(data.Investments)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
}

// SaveCount returns how many times a category was written
func (m *MockBudgetRepository) SaveCount(category domain.Category) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Saves[category]
}

func (m *MockBudgetRepository) save(category domain.Category, apply func(*domain.BudgetData)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	apply(&m.Data)
	m.Saves[category]++
	return nil
}

func (m *MockBudgetRepository) copyData() domain.BudgetData {
	d := m.Data
	d.Income = append([]domain.IncomeEntry{}, m.Data.Income...)
	d.Expenses = append([]domain.Expense{}, m.Data.Expenses...)
	d.Loans = append([]domain.Loan{}, m.Data.Loans...)
	d.Savings.Goals = append([]domain.SavingsGoal{}, m.Data.Savings.Goals...)
	d.Investments.Investments = append([]domain.InvestmentAccount{}, m.Data.Investments.Investments...)
	d.Investments.Pensions = append([]domain.PensionAccount{}, m.Data.Investments.Pensions...)
	return d
}

// MockPublisher records every published event
type MockPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// NewMockPublisher creates a new MockPublisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish implements websocket.EventPublisher
func (m *MockPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Types returns the type of every recorded event in order
func (m *MockPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Type
	}
	return types
}

// Last returns the most recent event
func (m *MockPublisher) Last() (websocket.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Events) == 0 {
		return websocket.Event{}, false
	}
	return m.Events[len(m.Events)-1], true
}
