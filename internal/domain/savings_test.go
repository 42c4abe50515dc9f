package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsGoal_Validate(t *testing.T) {
	valid := SavingsGoal{Name: "Holiday", TargetAmount: decimal.NewFromInt(1000), TargetDate: NewDate(2026, time.August, 1)}
	assert.NoError(t, valid.Validate())

	noTarget := valid
	noTarget.TargetAmount = decimal.Zero
	assert.ErrorIs(t, noTarget.Validate(), ErrGoalTargetInvalid)

	noDate := valid
	noDate.TargetDate = Date{}
	assert.ErrorIs(t, noDate.Validate(), ErrGoalDateRequired)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrNameRequired)
}

func TestSavingsGoal_RequiredContributionAt(t *testing.T) {
	today := NewDate(2026, time.January, 1)
	g := SavingsGoal{
		TargetAmount:  decimal.NewFromInt(14400),
		CurrentAmount: decimal.NewFromInt(2400),
		TargetDate:    NewDate(2026, time.December, 31),
	}

	assert.True(t, g.RequiredContributionAt(today).Equal(decimal.NewFromInt(1000)))

	overdue := g
	overdue.TargetDate = NewDate(2025, time.December, 1)
	assert.True(t, overdue.RequiredContributionAt(today).IsZero())

	met := g
	met.CurrentAmount = decimal.NewFromInt(20000)
	assert.True(t, met.RequiredContributionAt(today).IsZero())
}

func TestSavingsGoal_ProgressPercent(t *testing.T) {
	g := SavingsGoal{TargetAmount: decimal.NewFromInt(400), CurrentAmount: decimal.NewFromInt(100)}
	assert.True(t, g.ProgressPercent().Equal(decimal.NewFromInt(25)))

	g.CurrentAmount = decimal.NewFromInt(800)
	assert.True(t, g.ProgressPercent().Equal(decimal.NewFromInt(100)))

	g.TargetAmount = decimal.Zero
	assert.True(t, g.ProgressPercent().IsZero())
}

func TestSavingsGoal_WithDerived(t *testing.T) {
	g := SavingsGoal{
		TargetAmount: decimal.NewFromInt(1000),
		TargetDate:   NewDate(2026, time.April, 1),
	}

	got := g.WithDerived(NewDate(2026, time.January, 1))

	assert.True(t, got.MonthlyContribution.Equal(decimal.RequireFromString("333.33")))
	assert.True(t, got.Progress.IsZero())
	assert.True(t, g.MonthlyContribution.IsZero())
}

func TestSavings_EmergencyFund(t *testing.T) {
	s := Savings{EmergencyFunds: decimal.NewFromInt(3000), MonthlySavings: decimal.NewFromInt(200)}

	ef := s.EmergencyFund()

	assert.True(t, ef.CurrentAmount.Equal(decimal.NewFromInt(3000)))
	assert.True(t, ef.MonthlyContribution.Equal(decimal.NewFromInt(200)))
}
