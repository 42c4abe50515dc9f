package domain

import "github.com/shopspring/decimal"

// ContributionAdjustment records how a single planned contribution was
// scaled to fit the money available for its priority tier.
type ContributionAdjustment struct {
	MonthlyContributionOriginal decimal.Decimal `json:"monthly_contribution_original"`
	MonthlyContributionAdjusted decimal.Decimal `json:"monthly_contribution_adjusted"`
	ScalingFactor               decimal.Decimal `json:"scaling_factor"`
	IsScaled                    bool            `json:"is_scaled"`
}

// EmergencyFundScaling is the outcome of the first priority tier.
type EmergencyFundScaling struct {
	Original      decimal.Decimal `json:"original"`
	Adjusted      decimal.Decimal `json:"adjusted"`
	ScalingFactor decimal.Decimal `json:"scalingFactor"`
	IsScaled      bool            `json:"isScaled"`
}

type ScaledGoal struct {
	SavingsGoal
	ContributionAdjustment
}

// GoalScaling is the outcome of the second priority tier.
type GoalScaling struct {
	ScaledGoals                []ScaledGoal    `json:"scaledGoals"`
	IsScaled                   bool            `json:"isScaled"`
	ScalingFactor              decimal.Decimal `json:"scalingFactor"`
	TotalOriginalContributions decimal.Decimal `json:"totalOriginalContributions"`
	TotalScaledContributions   decimal.Decimal `json:"totalScaledContributions"`
}

type ScaledInvestment struct {
	InvestmentAccount
	ContributionAdjustment
}

type ScaledPension struct {
	PensionAccount
	ContributionAdjustment
}

// InvestmentScaling is the outcome of the third priority tier. Investments
// and pension employee contributions share one pool and one factor.
type InvestmentScaling struct {
	ScaledInvestments          []ScaledInvestment `json:"scaledInvestments"`
	ScaledPensions             []ScaledPension    `json:"scaledPensions"`
	IsScaled                   bool               `json:"isScaled"`
	ScalingFactor              decimal.Decimal    `json:"scalingFactor"`
	TotalOriginalContributions decimal.Decimal    `json:"totalOriginalContributions"`
	TotalScaledContributions   decimal.Decimal    `json:"totalScaledContributions"`
}

// BudgetTotals is the full result of one allocation run.
type BudgetTotals struct {
	TotalMonthlyIncome   decimal.Decimal `json:"totalMonthlyIncome"`
	TotalAnnualIncome    decimal.Decimal `json:"totalAnnualIncome"`
	TotalMonthlyExpenses decimal.Decimal `json:"totalMonthlyExpenses"`
	EssentialExpenses    decimal.Decimal `json:"essentialExpenses"`
	NonEssentialExpenses decimal.Decimal `json:"nonEssentialExpenses"`
	TotalMonthlyLoans    decimal.Decimal `json:"totalMonthlyLoans"`
	TotalAnnualExpenses  decimal.Decimal `json:"totalAnnualExpenses"`
	MonthlySurplus       decimal.Decimal `json:"monthlySurplus"`
	AnnualSurplus        decimal.Decimal `json:"annualSurplus"`
	SavingsRate          decimal.Decimal `json:"savingsRate"`

	EmergencyFundScaling EmergencyFundScaling `json:"emergencyFundScaling"`

	AvailableForGoals      decimal.Decimal `json:"availableForGoals"`
	GoalScaling            GoalScaling     `json:"goalScaling"`
	TotalGoalContributions decimal.Decimal `json:"totalGoalContributions"`
	TotalSavingsAllocated  decimal.Decimal `json:"totalSavingsAllocated"`

	AvailableForInvestments             decimal.Decimal   `json:"availableForInvestments"`
	InvestmentScaling                   InvestmentScaling `json:"investmentScaling"`
	TotalMonthlyInvestmentContributions decimal.Decimal   `json:"totalMonthlyInvestmentContributions"`
	TotalMonthlyPensionContributions    decimal.Decimal   `json:"totalMonthlyPensionContributions"`
	TotalEmployerPensionContributions   decimal.Decimal   `json:"totalEmployerPensionContributions"`

	PocketMoney decimal.Decimal `json:"pocketMoney"`
}
