package domain

import (
	"context"
	"fmt"
	"strings"
)

// Category names one of the five independently stored parts of a budget.
type Category string

const (
	CategoryExpenses    Category = "expenses"
	CategoryIncome      Category = "income"
	CategorySavings     Category = "savings"
	CategoryLoans       Category = "loans"
	CategoryInvestments Category = "investments"
)

// Categories lists every stored category.
var Categories = []Category{
	CategoryExpenses,
	CategoryIncome,
	CategorySavings,
	CategoryLoans,
	CategoryInvestments,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryExpenses, CategoryIncome, CategorySavings, CategoryLoans, CategoryInvestments:
		return true
	}
	return false
}

// ParseCategory validates a category name taken from a URL or config.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Default returns the value a category holds before anything is saved.
func (c Category) Default() any {
	switch c {
	case CategoryExpenses:
		return []Expense{}
	case CategoryIncome:
		return []IncomeEntry{}
	case CategoryLoans:
		return []Loan{}
	case CategorySavings:
		return DefaultSavings()
	case CategoryInvestments:
		return DefaultInvestments()
	}
	return nil
}

// BudgetData is a full snapshot of every category.
type BudgetData struct {
	Income      []IncomeEntry `json:"income"`
	Expenses    []Expense     `json:"expenses"`
	Loans       []Loan        `json:"loans"`
	Savings     Savings       `json:"savings"`
	Investments Investments   `json:"investments"`
}

// CategoryStore persists each category as one opaque JSON document.
// Writes replace the whole document.
type CategoryStore interface {
	// Get returns ErrCategoryNotFound when the category was never saved.
	Get(ctx context.Context, category Category) ([]byte, error)
	Put(ctx context.Context, category Category, data []byte) error
	Close() error
}

// BudgetRepository is the typed persistence contract used by services.
// Missing categories load as their defaults.
type BudgetRepository interface {
	LoadAll(ctx context.Context) (*BudgetData, error)
	GetIncome(ctx context.Context) ([]IncomeEntry, error)
	GetExpenses(ctx context.Context) ([]Expense, error)
	GetLoans(ctx context.Context) ([]Loan, error)
	GetSavings(ctx context.Context) (*Savings, error)
	GetInvestments(ctx context.Context) (*Investments, error)
	SaveIncome(ctx context.Context, income []IncomeEntry) error
	SaveExpenses(ctx context.Context, expenses []Expense) error
	SaveLoans(ctx context.Context, loans []Loan) error
	SaveSavings(ctx context.Context, savings *Savings) error
	SaveInvestments(ctx context.Context, investments *Investments) error
	// SaveCategory replaces a category with raw JSON after checking that it
	// decodes into the category's shape.
	SaveCategory(ctx context.Context, category Category, data []byte) error
	// GetCategory returns the stored JSON of a category, or its default.
	GetCategory(ctx context.Context, category Category) ([]byte, error)
}
