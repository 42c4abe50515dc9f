package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

func TestRoundUpToNearest100(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"999.99", "1000"},
		{"1000", "1000"},
		{"1000.01", "1100"},
		{"1", "100"},
	}

	for _, tt := range tests {
		assertDecimal(t, tt.want, RoundUpToNearest100(d(tt.input)), "input %s", tt.input)
	}
}

func TestGetEmergencyFundStatus_Thresholds(t *testing.T) {
	expenses := []domain.Expense{
		{Name: "Rent", MonthlyCost: d("333.33"), IsEssential: true},
		{Name: "Streaming", MonthlyCost: d("20")},
	}

	status := GetEmergencyFundStatus(expenses, nil, decimal.Zero, today)

	assertDecimal(t, "333.33", status.MonthlyEssentialBurden)
	assertDecimal(t, "1000", status.Minimum)
	assertDecimal(t, "2000", status.Recommended)
}

func TestGetEmergencyFundStatus_Bands(t *testing.T) {
	expenses := []domain.Expense{{Name: "Rent", MonthlyCost: d("333.33"), IsEssential: true}}

	tests := []struct {
		name       string
		current    string
		status     domain.EmergencyFundBand
		color      string
		percentage string
		message    string
	}{
		{"empty fund", "0", domain.EmergencyFundDanger, "red", "0", "short of your minimum target"},
		{"below minimum", "250", domain.EmergencyFundDanger, "red", "25", "short of your minimum target"},
		{"at minimum", "1000", domain.EmergencyFundWarning, "orange", "0", "short of your recommended target"},
		{"between targets", "1500", domain.EmergencyFundWarning, "orange", "50", "short of your recommended target"},
		{"at recommended", "2000", domain.EmergencyFundGood, "green", "100", "Excellent!"},
		{"above recommended", "9000", domain.EmergencyFundGood, "green", "100", "Excellent!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := GetEmergencyFundStatus(expenses, nil, d(tt.current), today)

			assert.Equal(t, tt.status, status.Status)
			assert.Equal(t, tt.color, status.Color)
			assertDecimal(t, tt.percentage, status.Percentage)
			assert.Contains(t, status.Message, tt.message)
		})
	}
}

func TestGetEmergencyFundStatus_MessageCitesGapAndMonths(t *testing.T) {
	expenses := []domain.Expense{{Name: "Rent", MonthlyCost: d("100"), IsEssential: true}}

	status := GetEmergencyFundStatus(expenses, nil, d("150"), today)

	assert.Equal(t, domain.EmergencyFundDanger, status.Status)
	assert.Contains(t, status.Message, "£150.00")
	assert.Contains(t, status.Message, "1.5 months of essential spending")
}

func TestGetEmergencyFundStatus_PercentageIsNotRounded(t *testing.T) {
	expenses := []domain.Expense{{Name: "Rent", MonthlyCost: d("100"), IsEssential: true}}

	danger := GetEmergencyFundStatus(expenses, nil, d("100"), today)
	assert.Equal(t, domain.EmergencyFundDanger, danger.Status)
	assert.True(t, danger.Percentage.GreaterThan(d("33.33")), danger.Percentage.String())
	assertDecimal(t, "33.3", danger.Percentage.Round(1))

	warning := GetEmergencyFundStatus(expenses, nil, d("400"), today)
	assert.Equal(t, domain.EmergencyFundWarning, warning.Status)
	assert.True(t, warning.Percentage.GreaterThan(d("33.33")), warning.Percentage.String())
	assertDecimal(t, "33.3", warning.Percentage.Round(1))
}

func TestGetEmergencyFundStatus_LoansAndAnnualCosts(t *testing.T) {
	expenses := []domain.Expense{
		{Name: "Rent", MonthlyCost: d("400"), IsEssential: true},
		{Name: "Insurance", AnnualCost: d("250"), IsEssential: true},
		{Name: "Holiday", AnnualCost: d("2000")},
		{Name: "Council tax", MonthlyCost: d("150"), IsEssential: true, IsIgnored: true},
	}
	loans := []domain.Loan{
		{Name: "Car", MonthlyPayment: d("100"), EndDate: domain.NewDate(2027, time.January, 1)},
		{Name: "Finished", MonthlyPayment: d("80"), EndDate: domain.NewDate(2025, time.January, 1)},
		{Name: "Ignored", MonthlyPayment: d("60"), EndDate: domain.NewDate(2027, time.January, 1), IsIgnored: true},
	}

	status := GetEmergencyFundStatus(expenses, loans, decimal.Zero, today)

	assertDecimal(t, "500", status.MonthlyEssentialBurden)
	assertDecimal(t, "250", status.EssentialAnnualOnly)
	assertDecimal(t, "1800", status.Minimum)
	assertDecimal(t, "3300", status.Recommended)
}

func TestGetEmergencyFundStatus_NoEssentialSpending(t *testing.T) {
	status := GetEmergencyFundStatus(nil, nil, decimal.Zero, today)

	assertDecimal(t, "0", status.Minimum)
	assertDecimal(t, "0", status.Recommended)
	assert.Equal(t, domain.EmergencyFundGood, status.Status)
}
