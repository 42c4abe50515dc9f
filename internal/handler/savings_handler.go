package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// SavingsHandler handles emergency fund and savings goal requests
type SavingsHandler struct {
	savingsService *service.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler
func NewSavingsHandler(savingsService *service.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// EmergencyFundRequest represents the emergency fund update body.
// Omitted fields are left unchanged.
type EmergencyFundRequest struct {
	CurrentAmount       util.Amount `json:"current_amount" swaggertype:"string"`
	MonthlyContribution util.Amount `json:"monthly_contribution" swaggertype:"string"`
}

// GoalRequest represents the create and update savings goal body
type GoalRequest struct {
	Name          string      `json:"name"`
	TargetAmount  util.Amount `json:"target_amount" swaggertype:"string"`
	TargetDate    string      `json:"target_date"`
	CurrentAmount util.Amount `json:"current_amount" swaggertype:"string"`
}

func (r GoalRequest) toInput() (service.GoalInput, []ValidationError) {
	input := service.GoalInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount.Decimal,
		CurrentAmount: r.CurrentAmount.Decimal,
	}
	errs := dateFields(dateField{"target_date", r.TargetDate, &input.TargetDate})
	return input, errs
}

// GetSavings handles GET /api/v1/savings
// @Summary Emergency fund and savings goals
// @Tags savings
// @Produce json
// @Success 200 {object} domain.Savings
// @Failure 500 {object} ProblemDetails
// @Router /savings [get]
func (h *SavingsHandler) GetSavings(c echo.Context) error {
	savings, err := h.savingsService.GetSavings(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get savings")
	}
	return c.JSON(http.StatusOK, savings)
}

// SetEmergencyFund handles PUT /api/v1/savings/emergency-fund
// @Summary Update the emergency fund
// @Tags savings
// @Accept json
// @Produce json
// @Param request body EmergencyFundRequest true "Emergency fund"
// @Success 200 {object} domain.EmergencyFund
// @Failure 400 {object} ProblemDetails
// @Router /savings/emergency-fund [put]
func (h *SavingsHandler) SetEmergencyFund(c echo.Context) error {
	var req EmergencyFundRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	fund, err := h.savingsService.SetEmergencyFund(c.Request().Context(), service.EmergencyFundInput{
		CurrentAmount:       nullAmount(req.CurrentAmount),
		MonthlyContribution: nullAmount(req.MonthlyContribution),
	})
	if err != nil {
		return respondError(c, err, "update emergency fund")
	}
	return c.JSON(http.StatusOK, fund)
}

// CreateGoal handles POST /api/v1/savings/goals
// @Summary Add a savings goal
// @Description The monthly contribution is derived from the remaining amount and months left
// @Tags savings
// @Accept json
// @Produce json
// @Param request body GoalRequest true "Savings goal"
// @Success 201 {object} domain.SavingsGoal
// @Failure 400 {object} ProblemDetails
// @Router /savings/goals [post]
func (h *SavingsHandler) CreateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	goal, err := h.savingsService.AddGoal(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err, "create savings goal")
	}

	log.Info().Str("goal_id", string(goal.ID)).Str("name", goal.Name).Msg("Savings goal created")
	return c.JSON(http.StatusCreated, goal)
}

// UpdateGoal handles PUT /api/v1/savings/goals/:id
// @Summary Update a savings goal
// @Tags savings
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body GoalRequest true "Savings goal"
// @Success 200 {object} domain.SavingsGoal
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /savings/goals/{id} [put]
func (h *SavingsHandler) UpdateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	goal, err := h.savingsService.UpdateGoal(c.Request().Context(), idParam(c), input)
	if err != nil {
		return respondError(c, err, "update savings goal")
	}
	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/savings/goals/:id
// @Summary Delete a savings goal
// @Tags savings
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /savings/goals/{id} [delete]
func (h *SavingsHandler) DeleteGoal(c echo.Context) error {
	if err := h.savingsService.DeleteGoal(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete savings goal")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleGoalIgnored handles PATCH /api/v1/savings/goals/:id/toggle-ignored
// @Summary Include or exclude a goal from the allocation
// @Tags savings
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} domain.SavingsGoal
// @Failure 404 {object} ProblemDetails
// @Router /savings/goals/{id}/toggle-ignored [patch]
func (h *SavingsHandler) ToggleGoalIgnored(c echo.Context) error {
	goal, err := h.savingsService.ToggleGoalIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update savings goal")
	}
	return c.JSON(http.StatusOK, goal)
}

// ReplaceSavings handles PUT /api/v1/savings
// @Summary Replace the savings category
// @Tags savings
// @Accept json
// @Produce json
// @Param request body domain.Savings true "Savings"
// @Success 200 {object} domain.Savings
// @Failure 400 {object} ProblemDetails
// @Router /savings [put]
func (h *SavingsHandler) ReplaceSavings(c echo.Context) error {
	savings := domain.DefaultSavings()
	if err := c.Bind(savings); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if savings.Goals == nil {
		savings.Goals = []domain.SavingsGoal{}
	}

	saved, err := h.savingsService.ReplaceSavings(c.Request().Context(), savings)
	if err != nil {
		return respondError(c, err, "replace savings")
	}
	return c.JSON(http.StatusOK, saved)
}
