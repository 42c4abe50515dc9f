package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// SavingsGoal is a target amount to reach by a date. MonthlyContribution and
// Progress are cached copies of values derived from the other fields.
type SavingsGoal struct {
	ID                  ID              `json:"id"`
	Name                string          `json:"name"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	TargetDate          Date            `json:"target_date"`
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	Progress            decimal.Decimal `json:"progress"`
	IsIgnored           bool            `json:"is_ignored"`
}

func (g *SavingsGoal) Validate() error {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetInvalid
	}
	if g.TargetDate.IsZero() {
		return ErrGoalDateRequired
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// MonthsRemainingAt returns the whole months left until the target date.
func (g SavingsGoal) MonthsRemainingAt(today Date) int64 {
	if g.TargetDate.IsZero() {
		return 0
	}
	return util.MonthsBetween(today.Time, g.TargetDate.Time)
}

// RequiredContributionAt spreads the outstanding amount evenly over the
// months left. Goals that are due, overdue or already met need nothing.
func (g SavingsGoal) RequiredContributionAt(today Date) decimal.Decimal {
	months := g.MonthsRemainingAt(today)
	if months <= 0 {
		return decimal.Zero
	}
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if !remaining.IsPositive() {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(months))
}

// ProgressPercent returns current/target as a percentage capped at 100.
func (g SavingsGoal) ProgressPercent() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return clampPercent(g.CurrentAmount.Div(g.TargetAmount).Mul(hundred))
}

// WithDerived returns a copy with MonthlyContribution and Progress recomputed.
func (g SavingsGoal) WithDerived(today Date) SavingsGoal {
	g.MonthlyContribution = g.RequiredContributionAt(today).Round(2)
	g.Progress = g.ProgressPercent().Round(2)
	return g
}

// Savings is the stored savings category: the emergency fund plus goals.
type Savings struct {
	EmergencyFunds decimal.Decimal `json:"emergency_funds"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	Goals          []SavingsGoal   `json:"goals"`
}

// EmergencyFund is the single pot reserved for unexpected costs.
type EmergencyFund struct {
	CurrentAmount       decimal.Decimal `json:"current_amount"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
}

// EmergencyFund returns the fund held in the savings category.
func (s Savings) EmergencyFund() EmergencyFund {
	return EmergencyFund{CurrentAmount: s.EmergencyFunds, MonthlyContribution: s.MonthlySavings}
}

// DefaultSavings returns the savings category used when nothing is stored.
func DefaultSavings() *Savings {
	return &Savings{
		EmergencyFunds: decimal.Zero,
		MonthlySavings: decimal.Zero,
		Goals:          []SavingsGoal{},
	}
}
