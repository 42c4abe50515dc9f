package domain

import "github.com/shopspring/decimal"

// EmergencyFundBand classifies how well the emergency fund covers essential
// spending.
type EmergencyFundBand string

const (
	EmergencyFundGood    EmergencyFundBand = "good"
	EmergencyFundWarning EmergencyFundBand = "warning"
	EmergencyFundDanger  EmergencyFundBand = "danger"
)

// Color is the presentation colour for the band.
func (b EmergencyFundBand) Color() string {
	switch b {
	case EmergencyFundGood:
		return "green"
	case EmergencyFundWarning:
		return "orange"
	default:
		return "red"
	}
}

// EmergencyFundStatus compares the emergency fund with targets derived from
// essential spending.
type EmergencyFundStatus struct {
	MonthlyEssentialBurden decimal.Decimal   `json:"monthlyEssentialBurden"`
	EssentialAnnualOnly    decimal.Decimal   `json:"essentialAnnualOnly"`
	Minimum                decimal.Decimal   `json:"minimum"`
	Recommended            decimal.Decimal   `json:"recommended"`
	Current                decimal.Decimal   `json:"current"`
	Status                 EmergencyFundBand `json:"status"`
	Color                  string            `json:"color"`
	Percentage             decimal.Decimal   `json:"percentage"`
	Message                string            `json:"message"`
}

// CategoryAmount is the monthly spend of one expense category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AllocationSlice is one segment of where the income goes.
type AllocationSlice struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// BudgetAllocation breaks income down per month and per year.
type BudgetAllocation struct {
	Monthly []AllocationSlice `json:"monthly"`
	Annual  []AllocationSlice `json:"annual"`
}

// BudgetOverview bundles everything the dashboard shows.
type BudgetOverview struct {
	Totals              *BudgetTotals        `json:"totals"`
	EmergencyFundStatus *EmergencyFundStatus `json:"emergencyFundStatus"`
	CategoryBreakdown   []CategoryAmount     `json:"categoryBreakdown"`
	Allocation          *BudgetAllocation    `json:"allocation"`
}
