package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AmountsNeverFail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{"number", `{"monthly_pay": 2500.5}`, decimal.RequireFromString("2500.5")},
		{"numeric string", `{"monthly_pay": "2500"}`, decimal.NewFromInt(2500)},
		{"pounds and commas", `{"monthly_pay": "£2,500"}`, decimal.NewFromInt(2500)},
		{"blank", `{"monthly_pay": ""}`, decimal.Zero},
		{"null", `{"monthly_pay": null}`, decimal.Zero},
		{"junk", `{"monthly_pay": "n/a"}`, decimal.Zero},
		{"bool", `{"monthly_pay": true}`, decimal.Zero},
		{"absent", `{}`, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry IncomeEntry
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &entry))
			assert.True(t, entry.MonthlyPay.Equal(tt.want), entry.MonthlyPay.String())
		})
	}
}

func TestDecode_PensionKeepsOwnFields(t *testing.T) {
	var p PensionAccount
	raw := `{"id":"p1","account_name":"Work","pension_type":"SIPP","monthly_contribution":"200","employer_contribution":"150","is_ignored":true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, ID("p1"), p.ID)
	assert.Equal(t, "Work", p.AccountName)
	assert.Equal(t, "SIPP", p.PensionType)
	assert.True(t, p.IsIgnored)
	assert.True(t, p.MonthlyContribution.Equal(decimal.NewFromInt(200)))
	assert.True(t, p.EmployerContribution.Equal(decimal.NewFromInt(150)))
}

func TestDecode_SavingsKeepsDefaultsForBlankFields(t *testing.T) {
	s := DefaultSavings()
	require.NoError(t, json.Unmarshal([]byte(`{"emergency_funds":"","monthly_savings":"x","goals":[{"name":"Car","target_amount":"","current_amount":"10"}]}`), s))

	assert.True(t, s.EmergencyFunds.IsZero())
	assert.True(t, s.MonthlySavings.IsZero())
	require.Len(t, s.Goals, 1)
	assert.True(t, s.Goals[0].TargetAmount.IsZero())
	assert.True(t, s.Goals[0].CurrentAmount.Equal(decimal.NewFromInt(10)))
}

func TestDecode_ScaledGoalKeepsAdjustment(t *testing.T) {
	raw := `{"name":"Car","target_amount":1000,"monthly_contribution":100,"monthly_contribution_original":100,"monthly_contribution_adjusted":50,"scaling_factor":0.5,"is_scaled":true}`

	var g ScaledGoal
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	assert.Equal(t, "Car", g.Name)
	assert.True(t, g.TargetAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, g.MonthlyContributionAdjusted.Equal(decimal.NewFromInt(50)))
	assert.True(t, g.IsScaled)
}

func TestDecode_StructuralErrorsStillFail(t *testing.T) {
	var expenses []Expense
	assert.Error(t, json.Unmarshal([]byte(`{"expense_name":"Rent"}`), &expenses))

	var s Savings
	assert.Error(t, json.Unmarshal([]byte(`{"goals":"not a list"}`), &s))
}
