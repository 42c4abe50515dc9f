package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/testutil"
)

func setupCategoryHandler() (*CategoryHandler, *testutil.MockBudgetRepository, *testutil.MockPublisher) {
	repo := testutil.NewMockBudgetRepository()
	publisher := testutil.NewMockPublisher()
	svc := service.NewBudgetService(repo)
	svc.SetEventPublisher(publisher)
	return NewCategoryHandler(svc), repo, publisher
}

func withCategory(c echo.Context, category string) echo.Context {
	c.SetParamNames("category")
	c.SetParamValues(category)
	return c
}

func TestCategoryHandler_GetDefaults(t *testing.T) {
	h, _, _ := setupCategoryHandler()

	c, rec := newRequest(http.MethodGet, "/api/income", "")
	require.NoError(t, h.GetCategory(withCategory(c, "income")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCategoryHandler_GetUnknownCategory(t *testing.T) {
	h, _, _ := setupCategoryHandler()

	c, rec := newRequest(http.MethodGet, "/api/holidays", "")
	require.NoError(t, h.GetCategory(withCategory(c, "holidays")))

	decodeProblem(t, rec, http.StatusNotFound)
}

func TestCategoryHandler_SaveReplacesWholeCategory(t *testing.T) {
	h, repo, publisher := setupCategoryHandler()
	repo.Data.Expenses = []domain.Expense{{ID: "old", Name: "Old", MonthlyCost: decimal.NewFromInt(1)}}

	body := `[{"id":1700000000000,"expense_category":"Food","expense_name":"Groceries","monthly_cost":250,"annual_cost":0,"is_essential":true,"is_ignored":false}]`
	c, rec := newRequest(http.MethodPost, "/api/expenses", body)
	require.NoError(t, h.SaveCategory(withCategory(c, "expenses")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SaveResult{Success: true}, decodeBody[SaveResult](t, rec))
	require.Len(t, repo.Data.Expenses, 1)
	assert.Equal(t, domain.ID("1700000000000"), repo.Data.Expenses[0].ID)

	last, ok := publisher.Last()
	require.True(t, ok)
	assert.Equal(t, "category.replaced", string(last.Type))
}

func TestCategoryHandler_SaveMalformedBody(t *testing.T) {
	h, repo, publisher := setupCategoryHandler()

	c, rec := newRequest(http.MethodPost, "/api/savings", `{"goals": "not a list"}`)
	require.NoError(t, h.SaveCategory(withCategory(c, "savings")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeBody[SaveResult](t, rec)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, repo.SaveCount(domain.CategorySavings))
	assert.Empty(t, publisher.Types())
}

func TestCategoryHandler_SaveBlankAmountsBecomeZero(t *testing.T) {
	h, repo, _ := setupCategoryHandler()

	body := `[{"expense_name":"Rent","monthly_cost":1000,"annual_cost":""},{"expense_name":"Insurance","monthly_cost":"n/a","annual_cost":"360"}]`
	c, rec := newRequest(http.MethodPost, "/api/expenses", body)
	require.NoError(t, h.SaveCategory(withCategory(c, "expenses")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[SaveResult](t, rec).Success)
	require.Len(t, repo.Data.Expenses, 2)
	assert.True(t, repo.Data.Expenses[0].AnnualCost.IsZero())
	assert.True(t, repo.Data.Expenses[1].MonthlyCost.IsZero())
	assert.True(t, repo.Data.Expenses[1].AnnualCost.Equal(decimal.NewFromInt(360)))
}

func TestCategoryHandler_SaveStorageFailure(t *testing.T) {
	h, repo, _ := setupCategoryHandler()
	repo.SaveErr = assert.AnError

	c, rec := newRequest(http.MethodPost, "/api/income", `[]`)
	require.NoError(t, h.SaveCategory(withCategory(c, "income")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decodeBody[SaveResult](t, rec).Success)
}
