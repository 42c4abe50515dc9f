package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository on top of any
// domain.CategoryStore. Documents are stored as indented JSON.
type BudgetRepository struct {
	store domain.CategoryStore
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(store domain.CategoryStore) *BudgetRepository {
	return &BudgetRepository{store: store}
}

// EnsureDefaults writes the default document for every category that has
// never been saved.
func (r *BudgetRepository) EnsureDefaults(ctx context.Context) error {
	for _, category := range domain.Categories {
		_, err := r.store.Get(ctx, category)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		if err := r.save(ctx, category, category.Default()); err != nil {
			return err
		}
	}
	return nil
}

// LoadAll reads the five categories concurrently
func (r *BudgetRepository) LoadAll(ctx context.Context) (*domain.BudgetData, error) {
	data := &domain.BudgetData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Income, err = r.GetIncome(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Expenses, err = r.GetExpenses(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Loans, err = r.GetLoans(ctx)
		return err
	})
	g.Go(func() error {
		savings, err := r.GetSavings(ctx)
		if err != nil {
			return err
		}
		data.Savings = *savings
		return nil
	})
	g.Go(func() error {
		investments, err := r.GetInvestments(ctx)
		if err != nil {
			return err
		}
		data.Investments = *investments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *BudgetRepository) GetIncome(ctx context.Context) ([]domain.IncomeEntry, error) {
	var income []domain.IncomeEntry
	if err := r.load(ctx, domain.CategoryIncome, &income); err != nil {
		return nil, err
	}
	if income == nil {
		income = []domain.IncomeEntry{}
	}
	return income, nil
}

func (r *BudgetRepository) GetExpenses(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense
	if err := r.load(ctx, domain.CategoryExpenses, &expenses); err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

func (r *BudgetRepository) GetLoans(ctx context.Context) ([]domain.Loan, error) {
	var loans []domain.Loan
	if err := r.load(ctx, domain.CategoryLoans, &loans); err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	return loans, nil
}

func (r *BudgetRepository) GetSavings(ctx context.Context) (*domain.Savings, error) {
	savings := domain.DefaultSavings()
	if err := r.load(ctx, domain.CategorySavings, savings); err != nil {
		return nil, err
	}
	if savings.Goals == nil {
		savings.Goals = []domain.SavingsGoal{}
	}
	return savings, nil
}

func (r *BudgetRepository) GetInvestments(ctx context.Context) (*domain.Investments, error) {
	investments := domain.DefaultInvestments()
	if err := r.load(ctx, domain.CategoryInvestments, investments); err != nil {
		return nil, err
	}
	if investments.Investments == nil {
		investments.Investments = []domain.InvestmentAccount{}
	}
	if investments.Pensions == nil {
		investments.Pensions = []domain.PensionAccount{}
	}
	return investments, nil
}

func (r *BudgetRepository) SaveIncome(ctx context.Context, income []domain.IncomeEntry) error {
	return r.save(ctx, domain.CategoryIncome, nonNilSlice(income))
}

func (r *BudgetRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	return r.save(ctx, domain.CategoryExpenses, nonNilSlice(expenses))
}

func (r *BudgetRepository) SaveLoans(ctx context.Context, loans []domain.Loan) error {
	return r.save(ctx, domain.CategoryLoans, nonNilSlice(loans))
}

func (r *BudgetRepository) SaveSavings(ctx context.Context, savings *domain.Savings) error {
	s := *savings
	s.Goals = nonNilSlice(s.Goals)
	return r.save(ctx, domain.CategorySavings, &s)
}

func (r *BudgetRepository) SaveInvestments(ctx context.Context, investments *domain.Investments) error {
	inv := *investments
	inv.Investments = nonNilSlice(inv.Investments)
	inv.Pensions = nonNilSlice(inv.Pensions)
	return r.save(ctx, domain.CategoryInvestments, &inv)
}

// SaveCategory decodes raw into the category's shape and stores the
// normalised document.
func (r *BudgetRepository) SaveCategory(ctx context.Context, category domain.Category, raw []byte) error {
	var target any
	switch category {
	case domain.CategoryIncome:
		target = &[]domain.IncomeEntry{}
	case domain.CategoryExpenses:
		target = &[]domain.Expense{}
	case domain.CategoryLoans:
		target = &[]domain.Loan{}
	case domain.CategorySavings:
		target = domain.DefaultSavings()
	case domain.CategoryInvestments:
		target = domain.DefaultInvestments()
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, category, err)
	}

	switch v := target.(type) {
	case *[]domain.IncomeEntry:
		return r.SaveIncome(ctx, *v)
	case *[]domain.Expense:
		return r.SaveExpenses(ctx, *v)
	case *[]domain.Loan:
		return r.SaveLoans(ctx, *v)
	case *domain.Savings:
		return r.SaveSavings(ctx, v)
	case *domain.Investments:
		return r.SaveInvestments(ctx, v)
	}
	return nil
}

// GetCategory returns the stored document of a category, or its default.
func (r *BudgetRepository) GetCategory(ctx context.Context, category domain.Category) ([]byte, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}
	data, err := r.store.Get(ctx, category)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return json.MarshalIndent(category.Default(), "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", category, err)
	}
	return data, nil
}

func (r *BudgetRepository) load(ctx context.Context, category domain.Category, target any) error {
	data, err := r.store.Get(ctx, category)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", category, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", category, err)
	}
	return nil
}

func (r *BudgetRepository) save(ctx context.Context, category domain.Category, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", category, err)
	}
	if err := r.store.Put(ctx, category, data); err != nil {
		return fmt.Errorf("save %s: %w", category, err)
	}
	return nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
