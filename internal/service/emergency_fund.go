package service

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

var (
	three = decimal.NewFromInt(3)
	six   = decimal.NewFromInt(6)

	gbpPrinter = message.NewPrinter(language.BritishEnglish)
)

// GetEmergencyFundStatus sizes the emergency fund against essential spending.
// The minimum covers three months of essential expenses and loan payments,
// the recommended target six; essential annual-only costs are added once to
// both.
func GetEmergencyFundStatus(expenses []domain.Expense, loans []domain.Loan, current decimal.Decimal, today domain.Date) *domain.EmergencyFundStatus {
	essentialMonthly, essentialAnnualOnly := zero, zero
	for _, e := range expenses {
		if e.IsIgnored || !e.IsEssential {
			continue
		}
		essentialMonthly = essentialMonthly.Add(e.MonthlyCost)
		essentialAnnualOnly = essentialAnnualOnly.Add(e.AnnualCost)
	}
	burden := essentialMonthly.Add(sumActiveLoans(loans, today))

	minimum := RoundUpToNearest100(burden.Mul(three).Add(essentialAnnualOnly))
	recommended := RoundUpToNearest100(burden.Mul(six).Add(essentialAnnualOnly))

	status := &domain.EmergencyFundStatus{
		MonthlyEssentialBurden: burden,
		EssentialAnnualOnly:    essentialAnnualOnly,
		Minimum:                minimum,
		Recommended:            recommended,
		Current:                current,
	}

	switch {
	case current.GreaterThanOrEqual(recommended):
		status.Status = domain.EmergencyFundGood
		status.Percentage = hundred
		status.Message = "Excellent! You have met your recommended emergency fund target."
	case current.GreaterThanOrEqual(minimum):
		gap := recommended.Sub(current)
		status.Status = domain.EmergencyFundWarning
		status.Percentage = current.Sub(minimum).Div(recommended.Sub(minimum)).Mul(hundred)
		status.Message = "Good progress! You're " + FormatGBP(gap) + " short of your recommended target" + monthsOfSpending(gap, burden) + "."
	default:
		gap := minimum.Sub(current)
		status.Status = domain.EmergencyFundDanger
		status.Percentage = zero
		if minimum.IsPositive() && current.IsPositive() {
			status.Percentage = current.Div(minimum).Mul(hundred)
		}
		status.Message = "You're " + FormatGBP(gap) + " short of your minimum target" + monthsOfSpending(gap, burden) + "."
	}
	status.Color = status.Status.Color()

	return status
}

// RoundUpToNearest100 rounds x up to the next multiple of 100.
func RoundUpToNearest100(x decimal.Decimal) decimal.Decimal {
	return x.Div(hundred).Ceil().Mul(hundred)
}

// FormatGBP renders an amount as pounds with thousands separators.
func FormatGBP(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return gbpPrinter.Sprintf("£%.2f", f)
}

func monthsOfSpending(gap, burden decimal.Decimal) string {
	if !burden.IsPositive() {
		return ""
	}
	return " (" + gap.Div(burden).StringFixed(1) + " months of essential spending)"
}
