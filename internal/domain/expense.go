package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expense is a recurring monthly cost, an annual-only cost, or both.
type Expense struct {
	ID          ID              `json:"id"`
	Category    string          `json:"expense_category"`
	Name        string          `json:"expense_name"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`
	IsEssential bool            `json:"is_essential"`
	IsIgnored   bool            `json:"is_ignored"`
}

// UncategorizedLabel groups expenses saved without a category.
const UncategorizedLabel = "Uncategorized"

func (e *Expense) Validate() error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength || len(e.Category) > MaxNameLength {
		return ErrNameTooLong
	}
	if e.MonthlyCost.IsNegative() || e.AnnualCost.IsNegative() {
		return ErrNegativeAmount
	}
	if !e.MonthlyCost.IsPositive() && !e.AnnualCost.IsPositive() {
		return ErrExpenseCostRequired
	}
	return nil
}

// TotalAnnual is the full yearly cost: twelve monthly payments plus the
// annual-only amount.
func (e Expense) TotalAnnual() decimal.Decimal {
	return e.MonthlyCost.Mul(MonthsPerYear).Add(e.AnnualCost)
}

// CategoryLabel returns the category, or UncategorizedLabel when blank.
func (e Expense) CategoryLabel() string {
	if c := strings.TrimSpace(e.Category); c != "" {
		return c
	}
	return UncategorizedLabel
}
