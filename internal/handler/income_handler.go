package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// IncomeHandler handles income-related HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the create income request body.
// Amounts may be numbers or strings such as "£2,500".
type CreateIncomeRequest struct {
	Source     string      `json:"income_source"`
	MonthlyPay util.Amount `json:"monthly_pay" swaggertype:"string"`
	AnnualPay  util.Amount `json:"annual_pay" swaggertype:"string"`
}

// ListIncome handles GET /api/v1/income
// @Summary List income entries
// @Tags income
// @Produce json
// @Success 200 {array} domain.IncomeEntry
// @Failure 500 {object} ProblemDetails
// @Router /income [get]
func (h *IncomeHandler) ListIncome(c echo.Context) error {
	income, err := h.incomeService.ListIncome(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get income")
	}
	return c.JSON(http.StatusOK, income)
}

// CreateIncome handles POST /api/v1/income
// @Summary Add an income entry
// @Description Annual pay defaults to twelve times the monthly pay
// @Tags income
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "Income entry"
// @Success 201 {object} domain.IncomeEntry
// @Failure 400 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /income [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	var req CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	entry, err := h.incomeService.AddIncome(c.Request().Context(), service.AddIncomeInput{
		Source:     req.Source,
		MonthlyPay: req.MonthlyPay.Decimal,
		AnnualPay:  nullAmount(req.AnnualPay),
	})
	if err != nil {
		return respondError(c, err, "create income")
	}

	log.Info().Str("income_id", string(entry.ID)).Str("source", entry.Source).Msg("Income created")
	return c.JSON(http.StatusCreated, entry)
}

// DeleteIncome handles DELETE /api/v1/income/:id
// @Summary Delete an income entry
// @Tags income
// @Param id path string true "Income ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	if err := h.incomeService.DeleteIncome(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete income")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleIgnored handles PATCH /api/v1/income/:id/toggle-ignored
// @Summary Include or exclude an income entry from totals
// @Tags income
// @Produce json
// @Param id path string true "Income ID"
// @Success 200 {object} domain.IncomeEntry
// @Failure 404 {object} ProblemDetails
// @Router /income/{id}/toggle-ignored [patch]
func (h *IncomeHandler) ToggleIgnored(c echo.Context) error {
	entry, err := h.incomeService.ToggleIncomeIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update income")
	}
	return c.JSON(http.StatusOK, entry)
}

// ReplaceIncome handles PUT /api/v1/income
// @Summary Replace every income entry
// @Tags income
// @Accept json
// @Produce json
// @Param request body []domain.IncomeEntry true "Income entries"
// @Success 200 {array} domain.IncomeEntry
// @Failure 400 {object} ProblemDetails
// @Router /income [put]
func (h *IncomeHandler) ReplaceIncome(c echo.Context) error {
	var income []domain.IncomeEntry
	if err := c.Bind(&income); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if income == nil {
		income = []domain.IncomeEntry{}
	}

	saved, err := h.incomeService.ReplaceIncome(c.Request().Context(), income)
	if err != nil {
		return respondError(c, err, "replace income")
	}
	return c.JSON(http.StatusOK, saved)
}
