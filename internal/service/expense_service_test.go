package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/testutil"
)

func setupExpenseService() (*ExpenseService, *testutil.MockBudgetRepository, *testutil.MockPublisher) {
	repo := testutil.NewMockBudgetRepository()
	publisher := testutil.NewMockPublisher()
	svc := NewExpenseService(repo)
	svc.SetEventPublisher(publisher)
	return svc, repo, publisher
}

func TestAddExpense_Success(t *testing.T) {
	svc, repo, publisher := setupExpenseService()

	expense, err := svc.AddExpense(context.Background(), ExpenseInput{
		Category:    "Housing",
		Name:        "Rent",
		MonthlyCost: d("950"),
		IsEssential: true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, expense.ID)
	assert.True(t, expense.IsEssential)
	assert.Len(t, repo.Data.Expenses, 1)
	assert.Equal(t, []string{"expense.created"}, publisher.Types())
}

func TestAddExpense_AnnualOnlyIsAccepted(t *testing.T) {
	svc, _, _ := setupExpenseService()

	expense, err := svc.AddExpense(context.Background(), ExpenseInput{Name: "Car insurance", AnnualCost: d("600")})
	require.NoError(t, err)
	assertDecimal(t, "0", expense.MonthlyCost)
	assertDecimal(t, "600", expense.AnnualCost)
}

func TestAddExpense_Validation(t *testing.T) {
	svc, _, _ := setupExpenseService()

	tests := []struct {
		name  string
		input ExpenseInput
		want  error
	}{
		{"missing name", ExpenseInput{MonthlyCost: d("10")}, domain.ErrNameRequired},
		{"no cost", ExpenseInput{Name: "Gym"}, domain.ErrExpenseCostRequired},
		{"negative cost", ExpenseInput{Name: "Gym", MonthlyCost: d("-5")}, domain.ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddExpense(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateExpense_KeepsIgnoredFlag(t *testing.T) {
	svc, repo, publisher := setupExpenseService()
	repo.Data.Expenses = []domain.Expense{{ID: "e1", Name: "Gym", MonthlyCost: d("30"), IsIgnored: true}}

	updated, err := svc.UpdateExpense(context.Background(), "e1", ExpenseInput{
		Category:    "Health",
		Name:        "Gym membership",
		MonthlyCost: d("35"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Gym membership", updated.Name)
	assert.Equal(t, "Health", repo.Data.Expenses[0].Category)
	assert.True(t, updated.IsIgnored)
	assert.Equal(t, []string{"expense.updated"}, publisher.Types())

	_, err = svc.UpdateExpense(context.Background(), "nope", ExpenseInput{Name: "x", MonthlyCost: d("1")})
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestDeleteAndToggleExpense(t *testing.T) {
	svc, repo, _ := setupExpenseService()
	repo.Data.Expenses = []domain.Expense{
		{ID: "e1", Name: "Gym", MonthlyCost: d("30")},
		{ID: "e2", Name: "Phone", MonthlyCost: d("20")},
	}

	toggled, err := svc.ToggleExpenseIgnored(context.Background(), "e2")
	require.NoError(t, err)
	assert.True(t, toggled.IsIgnored)

	require.NoError(t, svc.DeleteExpense(context.Background(), "e1"))
	require.Len(t, repo.Data.Expenses, 1)
	assert.Equal(t, domain.ID("e2"), repo.Data.Expenses[0].ID)
	assert.True(t, repo.Data.Expenses[0].IsIgnored)

	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), "e1"), domain.ErrExpenseNotFound)
}

func TestSortExpenses_ByCategoryThenName(t *testing.T) {
	svc, repo, _ := setupExpenseService()
	repo.Data.Expenses = []domain.Expense{
		{ID: "1", Category: "Transport", Name: "Train", MonthlyCost: d("80")},
		{ID: "2", Category: "housing", Name: "Rent", MonthlyCost: d("900")},
		{ID: "3", Category: "Housing", Name: "Council tax", MonthlyCost: d("150")},
		{ID: "4", Category: "", Name: "Misc", MonthlyCost: d("10")},
	}

	sorted, err := svc.SortExpenses(context.Background())
	require.NoError(t, err)

	var ids []domain.ID
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []domain.ID{"4", "3", "2", "1"}, ids)
	assert.Equal(t, domain.ID("4"), repo.Data.Expenses[0].ID)
}
