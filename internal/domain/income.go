package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MonthsPerYear converts monthly amounts to annual ones.
var MonthsPerYear = decimal.NewFromInt(12)

// IncomeEntry is one source of income.
type IncomeEntry struct {
	ID         ID              `json:"id"`
	Source     string          `json:"income_source"`
	MonthlyPay decimal.Decimal `json:"monthly_pay"`
	AnnualPay  decimal.Decimal `json:"annual_pay"`
	IsIgnored  bool            `json:"is_ignored"`
}

func (i *IncomeEntry) Validate() error {
	source := strings.TrimSpace(i.Source)
	if source == "" {
		return ErrIncomeSourceEmpty
	}
	if len(source) > MaxNameLength {
		return ErrNameTooLong
	}
	if i.MonthlyPay.IsNegative() || i.AnnualPay.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}
