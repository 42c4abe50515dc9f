package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

var (
	ErrLoanNotFound         = errors.New("loan not found")
	ErrLoanCategoryRequired = errors.New("loan category is required")
	ErrLoanPaymentRequired  = errors.New("monthly payment is required")
	ErrLoanDatesRequired    = errors.New("start and end dates are required")
	ErrLoanDateOrder        = errors.New("end date must not be before start date")
)

// LoanCategories are the categories offered when adding a loan.
var LoanCategories = []string{"Car Loan", "Personal Loan", "Credit Card"}

var hundred = decimal.NewFromInt(100)

// Loan is a fixed monthly repayment between two dates. IsCompleted and
// Progress are cached copies of values derived from the dates.
type Loan struct {
	ID             ID              `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	StartDate      Date            `json:"start_date"`
	EndDate        Date            `json:"end_date"`
	IsCompleted    bool            `json:"is_completed"`
	Progress       decimal.Decimal `json:"progress"`
	IsIgnored      bool            `json:"is_ignored"`
}

func (l *Loan) Validate() error {
	name := strings.TrimSpace(l.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(l.Category) == "" {
		return ErrLoanCategoryRequired
	}
	if l.MonthlyPayment.IsNegative() {
		return ErrNegativeAmount
	}
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return ErrLoanDatesRequired
	}
	if l.EndDate.Before(l.StartDate.Time) {
		return ErrLoanDateOrder
	}
	return nil
}

// CompletedAt reports whether the loan's end date has been reached. A loan
// without an end date never completes.
func (l Loan) CompletedAt(today Date) bool {
	if l.EndDate.IsZero() {
		return false
	}
	return !today.Before(l.EndDate.Time)
}

// IsActiveAt reports whether the loan still counts towards monthly outgoings.
func (l Loan) IsActiveAt(today Date) bool {
	return !l.IsIgnored && !l.CompletedAt(today)
}

// ProgressAt returns the elapsed share of the loan term as a percentage
// clamped to [0, 100].
func (l Loan) ProgressAt(today Date) decimal.Decimal {
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return decimal.Zero
	}
	total := util.DaysBetween(l.StartDate.Time, l.EndDate.Time)
	if total <= 0 {
		if l.CompletedAt(today) {
			return hundred
		}
		return decimal.Zero
	}
	elapsed := util.DaysBetween(l.StartDate.Time, today.Time)
	pct := decimal.NewFromInt(elapsed).Div(decimal.NewFromInt(total)).Mul(hundred)
	return clampPercent(pct)
}

// MonthsRemainingAt returns the whole months left until the end date.
func (l Loan) MonthsRemainingAt(today Date) int64 {
	if l.EndDate.IsZero() {
		return 0
	}
	return util.MonthsBetween(today.Time, l.EndDate.Time)
}

// WithDerived returns a copy with IsCompleted and Progress recomputed.
func (l Loan) WithDerived(today Date) Loan {
	l.IsCompleted = l.CompletedAt(today)
	l.Progress = l.ProgressAt(today).Round(2)
	return l
}

func clampPercent(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
