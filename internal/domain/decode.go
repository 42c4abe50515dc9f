package domain

import (
	"encoding/json"

	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// Stored documents and replace-all uploads share these decoders. Money fields
// accept numbers, numeric strings, blanks and junk; anything that does not
// parse becomes zero instead of failing the whole document. Blank or absent
// fields keep whatever the target already held.

func (i *IncomeEntry) UnmarshalJSON(data []byte) error {
	type plain IncomeEntry
	aux := struct {
		*plain
		MonthlyPay util.Amount `json:"monthly_pay"`
		AnnualPay  util.Amount `json:"annual_pay"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.MonthlyPay = aux.MonthlyPay.Or(i.MonthlyPay)
	i.AnnualPay = aux.AnnualPay.Or(i.AnnualPay)
	return nil
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	type plain Expense
	aux := struct {
		*plain
		MonthlyCost util.Amount `json:"monthly_cost"`
		AnnualCost  util.Amount `json:"annual_cost"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.MonthlyCost = aux.MonthlyCost.Or(e.MonthlyCost)
	e.AnnualCost = aux.AnnualCost.Or(e.AnnualCost)
	return nil
}

func (l *Loan) UnmarshalJSON(data []byte) error {
	type plain Loan
	aux := struct {
		*plain
		MonthlyPayment util.Amount `json:"monthly_payment"`
		Progress       util.Amount `json:"progress"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	l.MonthlyPayment = aux.MonthlyPayment.Or(l.MonthlyPayment)
	l.Progress = aux.Progress.Or(l.Progress)
	return nil
}

func (g *SavingsGoal) UnmarshalJSON(data []byte) error {
	type plain SavingsGoal
	aux := struct {
		*plain
		TargetAmount        util.Amount `json:"target_amount"`
		CurrentAmount       util.Amount `json:"current_amount"`
		MonthlyContribution util.Amount `json:"monthly_contribution"`
		Progress            util.Amount `json:"progress"`
	}{plain: (*plain)(g)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	g.TargetAmount = aux.TargetAmount.Or(g.TargetAmount)
	g.CurrentAmount = aux.CurrentAmount.Or(g.CurrentAmount)
	g.MonthlyContribution = aux.MonthlyContribution.Or(g.MonthlyContribution)
	g.Progress = aux.Progress.Or(g.Progress)
	return nil
}

func (s *Savings) UnmarshalJSON(data []byte) error {
	type plain Savings
	aux := struct {
		*plain
		EmergencyFunds util.Amount `json:"emergency_funds"`
		MonthlySavings util.Amount `json:"monthly_savings"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.EmergencyFunds = aux.EmergencyFunds.Or(s.EmergencyFunds)
	s.MonthlySavings = aux.MonthlySavings.Or(s.MonthlySavings)
	return nil
}

func (a *InvestmentAccount) UnmarshalJSON(data []byte) error {
	type plain InvestmentAccount
	aux := struct {
		*plain
		CurrentValue        util.Amount `json:"current_value"`
		InitialInvestment   util.Amount `json:"initial_investment"`
		MonthlyContribution util.Amount `json:"monthly_contribution"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.CurrentValue = aux.CurrentValue.Or(a.CurrentValue)
	a.InitialInvestment = aux.InitialInvestment.Or(a.InitialInvestment)
	a.MonthlyContribution = aux.MonthlyContribution.Or(a.MonthlyContribution)
	return nil
}

// PensionAccount would otherwise pick up the promoted InvestmentAccount
// decoder and drop its own fields.
func (p *PensionAccount) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &p.InvestmentAccount); err != nil {
		return err
	}
	var aux struct {
		PensionType          *string     `json:"pension_type"`
		EmployerContribution util.Amount `json:"employer_contribution"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.PensionType != nil {
		p.PensionType = *aux.PensionType
	}
	p.EmployerContribution = aux.EmployerContribution.Or(p.EmployerContribution)
	return nil
}

func (s *ScaledGoal) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &s.SavingsGoal); err != nil {
		return err
	}
	return json.Unmarshal(data, &s.ContributionAdjustment)
}

func (s *ScaledInvestment) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &s.InvestmentAccount); err != nil {
		return err
	}
	return json.Unmarshal(data, &s.ContributionAdjustment)
}

func (s *ScaledPension) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &s.PensionAccount); err != nil {
		return err
	}
	return json.Unmarshal(data, &s.ContributionAdjustment)
}
