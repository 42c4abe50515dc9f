package service

import (
	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

var (
	zero    = decimal.Zero
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// AllocationInput is a snapshot of everything the allocation engine needs.
// When Today is zero the cached derived fields (loan completion, goal
// contributions) are used as stored; otherwise they are recomputed.
type AllocationInput struct {
	Income               []domain.IncomeEntry
	Expenses             []domain.Expense
	Loans                []domain.Loan
	Goals                []domain.SavingsGoal
	Investments          []domain.InvestmentAccount
	Pensions             []domain.PensionAccount
	EmergencyFundTarget  decimal.Decimal
	EmergencyFundBalance decimal.Decimal
	Today                domain.Date
}

// NewAllocationInput builds engine input from a stored snapshot.
func NewAllocationInput(data *domain.BudgetData, today domain.Date) AllocationInput {
	return AllocationInput{
		Income:               data.Income,
		Expenses:             data.Expenses,
		Loans:                data.Loans,
		Goals:                data.Savings.Goals,
		Investments:          data.Investments.Investments,
		Pensions:             data.Investments.Pensions,
		EmergencyFundTarget:  data.Savings.MonthlySavings,
		EmergencyFundBalance: data.Savings.EmergencyFunds,
		Today:                today,
	}
}

// CalculateTotals runs the allocation pipeline. Surplus is handed out in
// priority order: emergency fund, then savings goals, then investments and
// pensions. What remains is pocket money. The input is never modified.
func CalculateTotals(in AllocationInput) *domain.BudgetTotals {
	monthlyIncome, annualIncome := sumIncome(in.Income)
	essential, nonEssential, annualExpenses := sumExpenses(in.Expenses)
	monthlyExpenses := essential.Add(nonEssential)
	monthlyLoans := sumActiveLoans(in.Loans, in.Today)

	surplus := monthlyIncome.Sub(monthlyExpenses).Sub(monthlyLoans)

	ef := scaleEmergencyFund(in.EmergencyFundTarget, surplus)

	availableForGoals := nonNegative(surplus.Sub(ef.Adjusted))
	goals := scaleGoals(in.Goals, availableForGoals, in.Today)
	totalSavings := ef.Adjusted.Add(goals.TotalScaledContributions)

	availableForInvestments := nonNegative(surplus.Sub(totalSavings))
	investments := scaleContributions(in.Investments, in.Pensions, availableForInvestments)

	pocketMoney := nonNegative(surplus.Sub(totalSavings).Sub(investments.TotalScaledContributions))

	// Loans and savings are left out of the annual figure.
	annualSurplus := annualIncome.Sub(annualExpenses)

	savingsRate := zero
	if monthlyIncome.IsPositive() {
		savingsRate = surplus.Div(monthlyIncome).Mul(hundred).Round(2)
	}

	investmentTotal, pensionTotal := zero, zero
	for _, inv := range investments.ScaledInvestments {
		investmentTotal = investmentTotal.Add(inv.MonthlyContributionAdjusted)
	}
	for _, p := range investments.ScaledPensions {
		pensionTotal = pensionTotal.Add(p.MonthlyContributionAdjusted)
	}

	return &domain.BudgetTotals{
		TotalMonthlyIncome:   monthlyIncome,
		TotalAnnualIncome:    annualIncome,
		TotalMonthlyExpenses: monthlyExpenses,
		EssentialExpenses:    essential,
		NonEssentialExpenses: nonEssential,
		TotalMonthlyLoans:    monthlyLoans,
		TotalAnnualExpenses:  annualExpenses,
		MonthlySurplus:       surplus,
		AnnualSurplus:        annualSurplus,
		SavingsRate:          savingsRate,

		EmergencyFundScaling: ef,

		AvailableForGoals:      availableForGoals,
		GoalScaling:            goals,
		TotalGoalContributions: goals.TotalScaledContributions,
		TotalSavingsAllocated:  totalSavings,

		AvailableForInvestments:             availableForInvestments,
		InvestmentScaling:                   investments,
		TotalMonthlyInvestmentContributions: investmentTotal,
		TotalMonthlyPensionContributions:    pensionTotal,
		TotalEmployerPensionContributions:   sumEmployerContributions(in.Pensions),

		PocketMoney: pocketMoney,
	}
}

func sumIncome(income []domain.IncomeEntry) (monthly, annual decimal.Decimal) {
	monthly, annual = zero, zero
	for _, i := range income {
		if i.IsIgnored {
			continue
		}
		monthly = monthly.Add(i.MonthlyPay)
		annual = annual.Add(i.AnnualPay)
	}
	return monthly, annual
}

func sumExpenses(expenses []domain.Expense) (essential, nonEssential, annual decimal.Decimal) {
	essential, nonEssential, annual = zero, zero, zero
	for _, e := range expenses {
		if e.IsIgnored {
			continue
		}
		if e.IsEssential {
			essential = essential.Add(e.MonthlyCost)
		} else {
			nonEssential = nonEssential.Add(e.MonthlyCost)
		}
		annual = annual.Add(e.TotalAnnual())
	}
	return essential, nonEssential, annual
}

func sumActiveLoans(loans []domain.Loan, today domain.Date) decimal.Decimal {
	total := zero
	for _, l := range loans {
		if loanActive(l, today) {
			total = total.Add(l.MonthlyPayment)
		}
	}
	return total
}

func loanActive(l domain.Loan, today domain.Date) bool {
	if today.IsZero() {
		return !l.IsIgnored && !l.IsCompleted
	}
	return l.IsActiveAt(today)
}

func sumEmployerContributions(pensions []domain.PensionAccount) decimal.Decimal {
	total := zero
	for _, p := range pensions {
		if !p.IsIgnored {
			total = total.Add(p.EmployerContribution)
		}
	}
	return total
}

// ScalingFactor returns the share of target that available can cover, in
// [0, 1]. A zero target needs no scaling.
func ScalingFactor(available, target decimal.Decimal) decimal.Decimal {
	switch {
	case !target.IsPositive():
		return one
	case available.GreaterThanOrEqual(target):
		return one
	case !available.IsPositive():
		return zero
	default:
		return available.Div(target)
	}
}

func scaleEmergencyFund(target, surplus decimal.Decimal) domain.EmergencyFundScaling {
	target = nonNegative(target)
	adjusted := zero
	if surplus.IsPositive() {
		adjusted = decimal.Min(target, surplus)
	}
	factor := one
	if target.IsPositive() {
		factor = adjusted.Div(target)
	}
	return domain.EmergencyFundScaling{
		Original:      target,
		Adjusted:      adjusted,
		ScalingFactor: factor,
		IsScaled:      adjusted.LessThan(target),
	}
}

func scaleGoals(goals []domain.SavingsGoal, available decimal.Decimal, today domain.Date) domain.GoalScaling {
	originals := make([]decimal.Decimal, len(goals))
	totalOriginal := zero
	for i, g := range goals {
		originals[i] = goalContribution(g, today)
		if !g.IsIgnored {
			totalOriginal = totalOriginal.Add(originals[i])
		}
	}

	factor := ScalingFactor(available, totalOriginal)
	scaled := make([]domain.ScaledGoal, len(goals))
	totalScaled := zero
	for i, g := range goals {
		adj := adjust(originals[i], factor, g.IsIgnored)
		totalScaled = totalScaled.Add(adj.MonthlyContributionAdjusted)
		if !today.IsZero() {
			g = g.WithDerived(today)
		}
		scaled[i] = domain.ScaledGoal{SavingsGoal: g, ContributionAdjustment: adj}
	}

	return domain.GoalScaling{
		ScaledGoals:                scaled,
		IsScaled:                   factor.LessThan(one),
		ScalingFactor:              factor,
		TotalOriginalContributions: totalOriginal,
		TotalScaledContributions:   totalScaled,
	}
}

func goalContribution(g domain.SavingsGoal, today domain.Date) decimal.Decimal {
	if today.IsZero() {
		return nonNegative(g.MonthlyContribution)
	}
	return g.RequiredContributionAt(today)
}

func scaleContributions(investments []domain.InvestmentAccount, pensions []domain.PensionAccount, available decimal.Decimal) domain.InvestmentScaling {
	totalOriginal := zero
	for _, inv := range investments {
		if !inv.IsIgnored {
			totalOriginal = totalOriginal.Add(nonNegative(inv.MonthlyContribution))
		}
	}
	for _, p := range pensions {
		if !p.IsIgnored {
			totalOriginal = totalOriginal.Add(nonNegative(p.MonthlyContribution))
		}
	}

	factor := ScalingFactor(available, totalOriginal)
	totalScaled := zero

	scaledInvestments := make([]domain.ScaledInvestment, len(investments))
	for i, inv := range investments {
		adj := adjust(nonNegative(inv.MonthlyContribution), factor, inv.IsIgnored)
		totalScaled = totalScaled.Add(adj.MonthlyContributionAdjusted)
		scaledInvestments[i] = domain.ScaledInvestment{InvestmentAccount: inv, ContributionAdjustment: adj}
	}

	scaledPensions := make([]domain.ScaledPension, len(pensions))
	for i, p := range pensions {
		adj := adjust(nonNegative(p.MonthlyContribution), factor, p.IsIgnored)
		totalScaled = totalScaled.Add(adj.MonthlyContributionAdjusted)
		scaledPensions[i] = domain.ScaledPension{PensionAccount: p, ContributionAdjustment: adj}
	}

	return domain.InvestmentScaling{
		ScaledInvestments:          scaledInvestments,
		ScaledPensions:             scaledPensions,
		IsScaled:                   factor.LessThan(one),
		ScalingFactor:              factor,
		TotalOriginalContributions: totalOriginal,
		TotalScaledContributions:   totalScaled,
	}
}

// adjust applies the tier factor to one contribution. Ignored items keep
// their original for display but are allocated nothing.
func adjust(original, factor decimal.Decimal, ignored bool) domain.ContributionAdjustment {
	if ignored {
		return domain.ContributionAdjustment{
			MonthlyContributionOriginal: original,
			MonthlyContributionAdjusted: zero,
			ScalingFactor:               one,
		}
	}
	return domain.ContributionAdjustment{
		MonthlyContributionOriginal: original,
		MonthlyContributionAdjusted: original.Mul(factor),
		ScalingFactor:               factor,
		IsScaled:                    factor.LessThan(one) && original.IsPositive(),
	}
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return zero
	}
	return d
}
