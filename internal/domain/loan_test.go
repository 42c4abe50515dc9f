package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testLoan() Loan {
	return Loan{
		Name:           "Car",
		Category:       "Car Loan",
		MonthlyPayment: decimal.NewFromInt(250),
		StartDate:      NewDate(2025, time.January, 1),
		EndDate:        NewDate(2027, time.January, 1),
	}
}

func TestLoan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(l *Loan)
		wantErr error
	}{
		{"valid", func(l *Loan) {}, nil},
		{"missing name", func(l *Loan) { l.Name = "  " }, ErrNameRequired},
		{"missing category", func(l *Loan) { l.Category = "" }, ErrLoanCategoryRequired},
		{"negative payment", func(l *Loan) { l.MonthlyPayment = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"missing end date", func(l *Loan) { l.EndDate = Date{} }, ErrLoanDatesRequired},
		{"end before start", func(l *Loan) { l.EndDate = NewDate(2024, time.January, 1) }, ErrLoanDateOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLoan()
			tt.modify(&l)
			assert.ErrorIs(t, l.Validate(), tt.wantErr)
		})
	}
}

func TestLoan_CompletedAt(t *testing.T) {
	l := testLoan()

	assert.False(t, l.CompletedAt(NewDate(2026, time.December, 31)))
	assert.True(t, l.CompletedAt(NewDate(2027, time.January, 1)))
	assert.True(t, l.CompletedAt(NewDate(2028, time.January, 1)))

	l.EndDate = Date{}
	assert.False(t, l.CompletedAt(NewDate(2099, time.January, 1)))
}

func TestLoan_IsActiveAt(t *testing.T) {
	l := testLoan()
	today := NewDate(2026, time.January, 1)

	assert.True(t, l.IsActiveAt(today))

	l.IsIgnored = true
	assert.False(t, l.IsActiveAt(today))
}

func TestLoan_ProgressAt(t *testing.T) {
	l := Loan{
		StartDate: NewDate(2026, time.January, 1),
		EndDate:   NewDate(2026, time.January, 11),
	}

	assert.True(t, l.ProgressAt(NewDate(2025, time.December, 1)).IsZero())
	assert.True(t, l.ProgressAt(NewDate(2026, time.January, 6)).Equal(decimal.NewFromInt(50)))
	assert.True(t, l.ProgressAt(NewDate(2026, time.February, 1)).Equal(decimal.NewFromInt(100)))
}

func TestLoan_MonthsRemainingAt(t *testing.T) {
	l := testLoan()

	assert.Equal(t, int64(12), l.MonthsRemainingAt(NewDate(2026, time.January, 2)))
	assert.Equal(t, int64(0), l.MonthsRemainingAt(NewDate(2027, time.June, 1)))
}

func TestLoan_WithDerived(t *testing.T) {
	l := testLoan()

	past := l.WithDerived(NewDate(2027, time.March, 1))
	assert.True(t, past.IsCompleted)
	assert.True(t, past.Progress.Equal(decimal.NewFromInt(100)))
	assert.False(t, l.IsCompleted, "original must be unchanged")

	current := l.WithDerived(NewDate(2026, time.January, 1))
	assert.False(t, current.IsCompleted)
	assert.True(t, current.Progress.GreaterThan(decimal.Zero))
}
