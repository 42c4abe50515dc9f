package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// Allocation slice labels
const (
	SliceEssentialExpenses    = "Essential Expenses"
	SliceNonEssentialExpenses = "Non-Essential Expenses"
	SliceLoans                = "Loans"
	SliceSavings              = "Savings"
	SliceInvestments          = "Investments"
	SlicePocketMoney          = "Pocket Money"
)

// GetCategoryBreakdown sums the monthly cost of active expenses per category,
// largest first.
func GetCategoryBreakdown(expenses []domain.Expense) []domain.CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if e.IsIgnored {
			continue
		}
		label := e.CategoryLabel()
		totals[label] = totals[label].Add(e.MonthlyCost)
	}

	result := make([]domain.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		result = append(result, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Amount.Cmp(result[j].Amount); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// GetBudgetAllocation splits income into where it goes, per month and per
// year. Empty slices are omitted.
func GetBudgetAllocation(expenses []domain.Expense, totals *domain.BudgetTotals) *domain.BudgetAllocation {
	essentialAnnual, nonEssentialAnnual := zero, zero
	for _, e := range expenses {
		if e.IsIgnored {
			continue
		}
		if e.IsEssential {
			essentialAnnual = essentialAnnual.Add(e.TotalAnnual())
		} else {
			nonEssentialAnnual = nonEssentialAnnual.Add(e.TotalAnnual())
		}
	}

	investments := totals.InvestmentScaling.TotalScaledContributions
	monthly := []domain.AllocationSlice{
		{Label: SliceEssentialExpenses, Value: totals.EssentialExpenses},
		{Label: SliceNonEssentialExpenses, Value: totals.NonEssentialExpenses},
		{Label: SliceLoans, Value: totals.TotalMonthlyLoans},
		{Label: SliceSavings, Value: totals.TotalSavingsAllocated},
		{Label: SliceInvestments, Value: investments},
		{Label: SlicePocketMoney, Value: totals.PocketMoney},
	}
	annual := []domain.AllocationSlice{
		{Label: SliceEssentialExpenses, Value: essentialAnnual},
		{Label: SliceNonEssentialExpenses, Value: nonEssentialAnnual},
		{Label: SliceLoans, Value: totals.TotalMonthlyLoans.Mul(domain.MonthsPerYear)},
		{Label: SliceSavings, Value: totals.TotalSavingsAllocated.Mul(domain.MonthsPerYear)},
		{Label: SliceInvestments, Value: investments.Mul(domain.MonthsPerYear)},
		{Label: SlicePocketMoney, Value: totals.PocketMoney.Mul(domain.MonthsPerYear)},
	}

	return &domain.BudgetAllocation{
		Monthly: positiveSlices(monthly),
		Annual:  positiveSlices(annual),
	}
}

func positiveSlices(slices []domain.AllocationSlice) []domain.AllocationSlice {
	out := make([]domain.AllocationSlice, 0, len(slices))
	for _, s := range slices {
		if s.Value.IsPositive() {
			out = append(out, s)
		}
	}
	return out
}
