package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the create and update expense request body
type ExpenseRequest struct {
	Category    string      `json:"expense_category"`
	Name        string      `json:"expense_name"`
	MonthlyCost util.Amount `json:"monthly_cost" swaggertype:"string"`
	AnnualCost  util.Amount `json:"annual_cost" swaggertype:"string"`
	IsEssential bool        `json:"is_essential"`
}

func (r ExpenseRequest) toInput() service.ExpenseInput {
	return service.ExpenseInput{
		Category:    r.Category,
		Name:        r.Name,
		MonthlyCost: r.MonthlyCost.Decimal,
		AnnualCost:  r.AnnualCost.Decimal,
		IsEssential: r.IsEssential,
	}
}

// ListExpenses handles GET /api/v1/expenses
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} domain.Expense
// @Failure 500 {object} ProblemDetails
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.expenseService.ListExpenses(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get expenses")
	}
	return c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles POST /api/v1/expenses
// @Summary Add an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.AddExpense(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "create expense")
	}

	log.Info().Str("expense_id", string(expense.ID)).Str("name", expense.Name).Msg("Expense created")
	return c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles PUT /api/v1/expenses/:id
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body ExpenseRequest true "Expense"
// @Success 200 {object} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.expenseService.UpdateExpense(c.Request().Context(), idParam(c), req.toInput())
	if err != nil {
		return respondError(c, err, "update expense")
	}
	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
// @Summary Delete an expense
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	if err := h.expenseService.DeleteExpense(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete expense")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleIgnored handles PATCH /api/v1/expenses/:id/toggle-ignored
// @Summary Include or exclude an expense from totals
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} domain.Expense
// @Failure 404 {object} ProblemDetails
// @Router /expenses/{id}/toggle-ignored [patch]
func (h *ExpenseHandler) ToggleIgnored(c echo.Context) error {
	expense, err := h.expenseService.ToggleExpenseIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update expense")
	}
	return c.JSON(http.StatusOK, expense)
}

// SortExpenses handles POST /api/v1/expenses/sort
// @Summary Sort expenses by category, then name
// @Tags expenses
// @Produce json
// @Success 200 {array} domain.Expense
// @Router /expenses/sort [post]
func (h *ExpenseHandler) SortExpenses(c echo.Context) error {
	expenses, err := h.expenseService.SortExpenses(c.Request().Context())
	if err != nil {
		return respondError(c, err, "sort expenses")
	}
	return c.JSON(http.StatusOK, expenses)
}

// ReplaceExpenses handles PUT /api/v1/expenses
// @Summary Replace every expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body []domain.Expense true "Expenses"
// @Success 200 {array} domain.Expense
// @Failure 400 {object} ProblemDetails
// @Router /expenses [put]
func (h *ExpenseHandler) ReplaceExpenses(c echo.Context) error {
	var expenses []domain.Expense
	if err := c.Bind(&expenses); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	saved, err := h.expenseService.ReplaceExpenses(c.Request().Context(), expenses)
	if err != nil {
		return respondError(c, err, "replace expenses")
	}
	return c.JSON(http.StatusOK, saved)
}
