package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
)

// BudgetHandler serves the computed views over the whole budget
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetSnapshot handles GET /api/v1/snapshot
// @Summary Full budget snapshot
// @Description All five categories with derived loan and goal fields as of today
// @Tags budget
// @Produce json
// @Success 200 {object} domain.BudgetData
// @Failure 500 {object} ProblemDetails
// @Router /snapshot [get]
func (h *BudgetHandler) GetSnapshot(c echo.Context) error {
	data, err := h.budgetService.Snapshot(c.Request().Context())
	if err != nil {
		return respondError(c, err, "load budget")
	}
	return c.JSON(http.StatusOK, data)
}

// GetSummary handles GET /api/v1/budget/summary
// @Summary Budget totals
// @Description Runs the allocation engine: surplus, emergency fund, goal and investment scaling, pocket money
// @Tags budget
// @Produce json
// @Success 200 {object} domain.BudgetTotals
// @Failure 500 {object} ProblemDetails
// @Router /budget/summary [get]
func (h *BudgetHandler) GetSummary(c echo.Context) error {
	totals, err := h.budgetService.GetSummary(c.Request().Context())
	if err != nil {
		return respondError(c, err, "calculate budget summary")
	}
	return c.JSON(http.StatusOK, totals)
}

// GetEmergencyFundStatus handles GET /api/v1/budget/emergency-fund
// @Summary Emergency fund status
// @Tags budget
// @Produce json
// @Success 200 {object} domain.EmergencyFundStatus
// @Failure 500 {object} ProblemDetails
// @Router /budget/emergency-fund [get]
func (h *BudgetHandler) GetEmergencyFundStatus(c echo.Context) error {
	status, err := h.budgetService.GetEmergencyFundStatus(c.Request().Context())
	if err != nil {
		return respondError(c, err, "calculate emergency fund status")
	}
	return c.JSON(http.StatusOK, status)
}

// GetCategoryBreakdown handles GET /api/v1/budget/breakdown
// @Summary Monthly spend per expense category
// @Tags budget
// @Produce json
// @Success 200 {array} domain.CategoryAmount
// @Failure 500 {object} ProblemDetails
// @Router /budget/breakdown [get]
func (h *BudgetHandler) GetCategoryBreakdown(c echo.Context) error {
	breakdown, err := h.budgetService.GetCategoryBreakdown(c.Request().Context())
	if err != nil {
		return respondError(c, err, "calculate category breakdown")
	}
	return c.JSON(http.StatusOK, breakdown)
}

// GetAllocation handles GET /api/v1/budget/allocation
// @Summary Where the income goes
// @Tags budget
// @Produce json
// @Success 200 {object} domain.BudgetAllocation
// @Failure 500 {object} ProblemDetails
// @Router /budget/allocation [get]
func (h *BudgetHandler) GetAllocation(c echo.Context) error {
	allocation, err := h.budgetService.GetAllocation(c.Request().Context())
	if err != nil {
		return respondError(c, err, "calculate budget allocation")
	}
	return c.JSON(http.StatusOK, allocation)
}

// GetOverview handles GET /api/v1/budget/overview
// @Summary Every dashboard view in one response
// @Tags budget
// @Produce json
// @Success 200 {object} domain.BudgetOverview
// @Failure 500 {object} ProblemDetails
// @Router /budget/overview [get]
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	overview, err := h.budgetService.GetOverview(c.Request().Context())
	if err != nil {
		return respondError(c, err, "calculate budget overview")
	}
	return c.JSON(http.StatusOK, overview)
}
