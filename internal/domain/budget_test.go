package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Income ")
	assert.NoError(t, err)
	assert.Equal(t, CategoryIncome, c)

	_, err = ParseCategory("wishlist")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategory_Default(t *testing.T) {
	for _, c := range Categories {
		assert.NotNil(t, c.Default(), "category %s", c)
	}

	savings, ok := CategorySavings.Default().(*Savings)
	assert.True(t, ok)
	assert.NotNil(t, savings.Goals)

	investments, ok := CategoryInvestments.Default().(*Investments)
	assert.True(t, ok)
	assert.NotNil(t, investments.Investments)
	assert.NotNil(t, investments.Pensions)
}

func TestExpense_Validate(t *testing.T) {
	e := Expense{Name: "Rent"}
	assert.ErrorIs(t, e.Validate(), ErrExpenseCostRequired)

	e.AnnualCost = decimal.NewFromInt(100)
	assert.NoError(t, e.Validate())

	e.Name = ""
	assert.ErrorIs(t, e.Validate(), ErrNameRequired)
}

func TestExpense_TotalAnnual(t *testing.T) {
	e := Expense{MonthlyCost: decimal.NewFromInt(50), AnnualCost: decimal.NewFromInt(120)}

	assert.True(t, e.TotalAnnual().Equal(decimal.NewFromInt(720)))
}

func TestIncomeEntry_Validate(t *testing.T) {
	i := IncomeEntry{Source: "Salary", MonthlyPay: decimal.NewFromInt(2000)}
	assert.NoError(t, i.Validate())

	i.Source = ""
	assert.ErrorIs(t, i.Validate(), ErrIncomeSourceEmpty)
}
