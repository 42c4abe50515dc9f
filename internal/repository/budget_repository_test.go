package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/file"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/memory"
)

type failingStore struct {
	*memory.CategoryStore
	failOn domain.Category
}

func (s failingStore) Get(ctx context.Context, category domain.Category) ([]byte, error) {
	if category == s.failOn {
		return nil, errors.New("disk on fire")
	}
	return s.CategoryStore.Get(ctx, category)
}

func TestBudgetRepository_LoadAllDefaults(t *testing.T) {
	repo := NewBudgetRepository(memory.NewCategoryStore())

	data, err := repo.LoadAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, data.Income)
	assert.Empty(t, data.Income)
	assert.NotNil(t, data.Expenses)
	assert.NotNil(t, data.Loans)
	assert.NotNil(t, data.Savings.Goals)
	assert.True(t, data.Savings.EmergencyFunds.IsZero())
	assert.NotNil(t, data.Investments.Investments)
	assert.NotNil(t, data.Investments.Pensions)
}

func TestBudgetRepository_SaveAndLoad(t *testing.T) {
	repo := NewBudgetRepository(memory.NewCategoryStore())
	ctx := context.Background()

	require.NoError(t, repo.SaveIncome(ctx, []domain.IncomeEntry{
		{ID: "i1", Source: "Salary", MonthlyPay: decimal.NewFromInt(2500), AnnualPay: decimal.NewFromInt(30000)},
	}))
	require.NoError(t, repo.SaveLoans(ctx, []domain.Loan{
		{ID: "l1", Name: "Car", Category: "Car Loan", MonthlyPayment: decimal.NewFromInt(200),
			StartDate: domain.NewDate(2025, time.January, 1), EndDate: domain.NewDate(2027, time.January, 1)},
	}))
	require.NoError(t, repo.SaveSavings(ctx, &domain.Savings{EmergencyFunds: decimal.NewFromInt(4000), MonthlySavings: decimal.NewFromInt(150)}))

	data, err := repo.LoadAll(ctx)
	require.NoError(t, err)

	require.Len(t, data.Income, 1)
	assert.Equal(t, "Salary", data.Income[0].Source)
	assert.True(t, data.Income[0].MonthlyPay.Equal(decimal.NewFromInt(2500)))
	require.Len(t, data.Loans, 1)
	assert.True(t, data.Loans[0].EndDate.Equal(domain.NewDate(2027, time.January, 1).Time))
	assert.True(t, data.Savings.EmergencyFunds.Equal(decimal.NewFromInt(4000)))
	assert.NotNil(t, data.Savings.Goals)
}

func TestBudgetRepository_LoadAllPropagatesErrors(t *testing.T) {
	repo := NewBudgetRepository(failingStore{CategoryStore: memory.NewCategoryStore(), failOn: domain.CategoryLoans})

	_, err := repo.LoadAll(context.Background())
	assert.ErrorContains(t, err, "load loans")
}

func TestBudgetRepository_CorruptCategory(t *testing.T) {
	store := memory.NewCategoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, domain.CategoryExpenses, []byte(`{not json`)))

	_, err := NewBudgetRepository(store).GetExpenses(ctx)
	assert.ErrorContains(t, err, "decode expenses")
}

func TestBudgetRepository_LegacyDocuments(t *testing.T) {
	store := memory.NewCategoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, domain.CategoryExpenses, []byte(`[
  {"id": 1718000000000, "expense_category": "Housing", "expense_name": "Rent", "monthly_cost": 950, "annual_cost": 0, "is_essential": true}
]`)))
	require.NoError(t, store.Put(ctx, domain.CategorySavings, []byte(`{"emergency_funds": 1200.5, "monthly_savings": 100}`)))

	repo := NewBudgetRepository(store)

	expenses, err := repo.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, domain.ID("1718000000000"), expenses[0].ID)
	assert.False(t, expenses[0].IsIgnored)

	savings, err := repo.GetSavings(ctx)
	require.NoError(t, err)
	assert.True(t, savings.EmergencyFunds.Equal(decimal.RequireFromString("1200.5")))
	assert.NotNil(t, savings.Goals)
}

func TestBudgetRepository_SaveCategory(t *testing.T) {
	repo := NewBudgetRepository(memory.NewCategoryStore())
	ctx := context.Background()

	err := repo.SaveCategory(ctx, domain.CategoryIncome, []byte(`[{"id":"x","income_source":"Freelance","monthly_pay":"400","annual_pay":4800}]`))
	require.NoError(t, err)

	income, err := repo.GetIncome(ctx)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.True(t, income[0].MonthlyPay.Equal(decimal.NewFromInt(400)))

	err = repo.SaveCategory(ctx, domain.CategoryIncome, []byte(`{"oops":true}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = repo.SaveCategory(ctx, domain.Category("wishlist"), []byte(`[]`))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestBudgetRepository_SaveCategoryCoercesBadAmounts(t *testing.T) {
	repo := NewBudgetRepository(memory.NewCategoryStore())
	ctx := context.Background()

	err := repo.SaveCategory(ctx, domain.CategoryExpenses, []byte(`[{"expense_name":"Rent","monthly_cost":1000,"annual_cost":""},{"expense_name":"Gym","monthly_cost":"abc","annual_cost":null}]`))
	require.NoError(t, err)

	expenses, err := repo.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.True(t, expenses[0].MonthlyCost.Equal(decimal.NewFromInt(1000)))
	assert.True(t, expenses[0].AnnualCost.IsZero())
	assert.True(t, expenses[1].MonthlyCost.IsZero())
	assert.True(t, expenses[1].AnnualCost.IsZero())

	err = repo.SaveCategory(ctx, domain.CategoryInvestments, []byte(`{"investments":[],"pensions":[{"account_name":"Work","pension_type":"Workplace","monthly_contribution":"£1,250","employer_contribution":"lots"}]}`))
	require.NoError(t, err)

	investments, err := repo.GetInvestments(ctx)
	require.NoError(t, err)
	require.Len(t, investments.Pensions, 1)
	assert.Equal(t, "Work", investments.Pensions[0].AccountName)
	assert.Equal(t, "Workplace", investments.Pensions[0].PensionType)
	assert.True(t, investments.Pensions[0].MonthlyContribution.Equal(decimal.NewFromInt(1250)))
	assert.True(t, investments.Pensions[0].EmployerContribution.IsZero())
}

func TestBudgetRepository_LoadAllWithUnparseableAmounts(t *testing.T) {
	store := memory.NewCategoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, domain.CategoryIncome, []byte(`[{"income_source":"Job","monthly_pay":3000,"annual_pay":"n/a"}]`)))
	require.NoError(t, store.Put(ctx, domain.CategorySavings, []byte(`{"emergency_funds":"","monthly_savings":"100","goals":[{"name":"Car","target_amount":"5000","current_amount":"?","target_date":"2027-01-01"}]}`)))
	require.NoError(t, store.Put(ctx, domain.CategoryLoans, []byte(`[{"name":"Car","category":"Car Loan","monthly_payment":"two hundred","start_date":"2025-01-01","end_date":"2027-01-01"}]`)))

	data, err := NewBudgetRepository(store).LoadAll(ctx)
	require.NoError(t, err)

	require.Len(t, data.Income, 1)
	assert.True(t, data.Income[0].MonthlyPay.Equal(decimal.NewFromInt(3000)))
	assert.True(t, data.Income[0].AnnualPay.IsZero())
	assert.True(t, data.Savings.EmergencyFunds.IsZero())
	assert.True(t, data.Savings.MonthlySavings.Equal(decimal.NewFromInt(100)))
	require.Len(t, data.Savings.Goals, 1)
	assert.True(t, data.Savings.Goals[0].TargetAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, data.Savings.Goals[0].CurrentAmount.IsZero())
	require.Len(t, data.Loans, 1)
	assert.True(t, data.Loans[0].MonthlyPayment.IsZero())
	assert.True(t, data.Loans[0].EndDate.Equal(domain.NewDate(2027, time.January, 1).Time))
}

func TestBudgetRepository_GetCategoryDefault(t *testing.T) {
	repo := NewBudgetRepository(memory.NewCategoryStore())

	raw, err := repo.GetCategory(context.Background(), domain.CategoryInvestments)
	require.NoError(t, err)
	assert.JSONEq(t, `{"investments":[],"pensions":[]}`, string(raw))
}

func TestBudgetRepository_EnsureDefaultsWithFileStore(t *testing.T) {
	store, err := file.NewCategoryStore(t.TempDir())
	require.NoError(t, err)
	repo := NewBudgetRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SaveExpenses(ctx, []domain.Expense{{ID: "keep", Name: "Rent", MonthlyCost: decimal.NewFromInt(900)}}))
	require.NoError(t, repo.EnsureDefaults(ctx))

	for _, category := range domain.Categories {
		_, err := store.Get(ctx, category)
		assert.NoError(t, err, "category %s", category)
	}

	expenses, err := repo.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, domain.ID("keep"), expenses[0].ID)

	raw, err := store.Get(ctx, domain.CategorySavings)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"goals\": []")
}
