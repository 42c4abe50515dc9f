package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvestmentAccount is an ISA, brokerage or similar account with an optional
// regular contribution.
type InvestmentAccount struct {
	ID                  ID              `json:"id"`
	AccountName         string          `json:"account_name"`
	AccountType         string          `json:"account_type,omitempty"`
	Provider            string          `json:"provider"`
	CurrentValue        decimal.Decimal `json:"current_value"`
	InitialInvestment   decimal.Decimal `json:"initial_investment"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	IsIgnored           bool            `json:"is_ignored"`
}

func (a *InvestmentAccount) Validate() error {
	if err := a.validateCommon(); err != nil {
		return err
	}
	if strings.TrimSpace(a.AccountType) == "" {
		return ErrAccountTypeRequired
	}
	return nil
}

func (a *InvestmentAccount) validateCommon() error {
	name := strings.TrimSpace(a.AccountName)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if a.CurrentValue.IsNegative() || a.InitialInvestment.IsNegative() || a.MonthlyContribution.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// GainLoss is the change in value of an account since it was opened.
type GainLoss struct {
	Gain       decimal.Decimal `json:"gain"`
	Percentage decimal.Decimal `json:"percentage"`
}

// GainLoss compares the current value with the initial investment.
func (a InvestmentAccount) GainLoss() GainLoss {
	gain := a.CurrentValue.Sub(a.InitialInvestment)
	pct := decimal.Zero
	if !a.InitialInvestment.IsZero() {
		pct = gain.Div(a.InitialInvestment).Mul(hundred).Round(2)
	}
	return GainLoss{Gain: gain, Percentage: pct}
}

// PensionAccount is an investment account with an employer contribution.
// Only the employee contribution draws on the monthly surplus.
type PensionAccount struct {
	InvestmentAccount
	PensionType          string          `json:"pension_type"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
}

func (p *PensionAccount) Validate() error {
	if err := p.validateCommon(); err != nil {
		return err
	}
	if strings.TrimSpace(p.PensionType) == "" {
		return ErrPensionTypeRequired
	}
	if p.EmployerContribution.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Investments is the stored investments category.
type Investments struct {
	Investments []InvestmentAccount `json:"investments"`
	Pensions    []PensionAccount    `json:"pensions"`
}

// DefaultInvestments returns the investments category used when nothing is
// stored.
func DefaultInvestments() *Investments {
	return &Investments{
		Investments: []InvestmentAccount{},
		Pensions:    []PensionAccount{},
	}
}
