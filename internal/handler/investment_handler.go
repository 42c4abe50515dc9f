package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// InvestmentHandler handles investment and pension requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// AccountRequest represents the create and update investment account body
type AccountRequest struct {
	AccountName         string      `json:"account_name"`
	AccountType         string      `json:"account_type"`
	Provider            string      `json:"provider"`
	CurrentValue        util.Amount `json:"current_value" swaggertype:"string"`
	InitialInvestment   util.Amount `json:"initial_investment" swaggertype:"string"`
	MonthlyContribution util.Amount `json:"monthly_contribution" swaggertype:"string"`
}

func (r AccountRequest) toInput() service.AccountInput {
	return service.AccountInput{
		AccountName:         r.AccountName,
		AccountType:         r.AccountType,
		Provider:            r.Provider,
		CurrentValue:        r.CurrentValue.Decimal,
		InitialInvestment:   r.InitialInvestment.Decimal,
		MonthlyContribution: r.MonthlyContribution.Decimal,
	}
}

// PensionRequest represents the create and update pension body
type PensionRequest struct {
	AccountRequest
	PensionType          string      `json:"pension_type"`
	EmployerContribution util.Amount `json:"employer_contribution" swaggertype:"string"`
}

func (r PensionRequest) toInput() service.PensionInput {
	return service.PensionInput{
		AccountInput:         r.AccountRequest.toInput(),
		PensionType:          r.PensionType,
		EmployerContribution: r.EmployerContribution.Decimal,
	}
}

// AccountResponse is an investment account with its gain or loss
type AccountResponse struct {
	domain.InvestmentAccount
	GainLoss domain.GainLoss `json:"gain_loss"`
}

// PensionResponse is a pension with its gain or loss
type PensionResponse struct {
	domain.PensionAccount
	GainLoss domain.GainLoss `json:"gain_loss"`
}

// InvestmentsResponse lists every account with gains
type InvestmentsResponse struct {
	Investments []AccountResponse `json:"investments"`
	Pensions    []PensionResponse `json:"pensions"`
}

func toAccountResponse(a domain.InvestmentAccount) AccountResponse {
	return AccountResponse{InvestmentAccount: a, GainLoss: a.GainLoss()}
}

func toPensionResponse(p domain.PensionAccount) PensionResponse {
	return PensionResponse{PensionAccount: p, GainLoss: p.GainLoss()}
}

// GetInvestments handles GET /api/v1/investments
// @Summary List investment and pension accounts
// @Tags investments
// @Produce json
// @Success 200 {object} InvestmentsResponse
// @Failure 500 {object} ProblemDetails
// @Router /investments [get]
func (h *InvestmentHandler) GetInvestments(c echo.Context) error {
	inv, err := h.investmentService.GetInvestments(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get investments")
	}

	response := InvestmentsResponse{
		Investments: make([]AccountResponse, len(inv.Investments)),
		Pensions:    make([]PensionResponse, len(inv.Pensions)),
	}
	for i, a := range inv.Investments {
		response.Investments[i] = toAccountResponse(a)
	}
	for i, p := range inv.Pensions {
		response.Pensions[i] = toPensionResponse(p)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateInvestment handles POST /api/v1/investments/accounts
// @Summary Add an investment account
// @Tags investments
// @Accept json
// @Produce json
// @Param request body AccountRequest true "Investment account"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} ProblemDetails
// @Router /investments/accounts [post]
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	account, err := h.investmentService.AddInvestment(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "create investment")
	}

	log.Info().Str("account_id", string(account.ID)).Str("name", account.AccountName).Msg("Investment account created")
	return c.JSON(http.StatusCreated, toAccountResponse(*account))
}

// UpdateInvestment handles PUT /api/v1/investments/accounts/:id
// @Summary Update an investment account
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body AccountRequest true "Investment account"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /investments/accounts/{id} [put]
func (h *InvestmentHandler) UpdateInvestment(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	account, err := h.investmentService.UpdateInvestment(c.Request().Context(), idParam(c), req.toInput())
	if err != nil {
		return respondError(c, err, "update investment")
	}
	return c.JSON(http.StatusOK, toAccountResponse(*account))
}

// DeleteInvestment handles DELETE /api/v1/investments/accounts/:id
// @Summary Delete an investment account
// @Tags investments
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /investments/accounts/{id} [delete]
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	if err := h.investmentService.DeleteInvestment(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete investment")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleInvestmentIgnored handles PATCH /api/v1/investments/accounts/:id/toggle-ignored
// @Summary Include or exclude an investment account from the allocation
// @Tags investments
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} ProblemDetails
// @Router /investments/accounts/{id}/toggle-ignored [patch]
func (h *InvestmentHandler) ToggleInvestmentIgnored(c echo.Context) error {
	account, err := h.investmentService.ToggleInvestmentIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update investment")
	}
	return c.JSON(http.StatusOK, toAccountResponse(*account))
}

// CreatePension handles POST /api/v1/investments/pensions
// @Summary Add a pension
// @Tags investments
// @Accept json
// @Produce json
// @Param request body PensionRequest true "Pension"
// @Success 201 {object} PensionResponse
// @Failure 400 {object} ProblemDetails
// @Router /investments/pensions [post]
func (h *InvestmentHandler) CreatePension(c echo.Context) error {
	var req PensionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	pension, err := h.investmentService.AddPension(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err, "create pension")
	}

	log.Info().Str("account_id", string(pension.ID)).Str("name", pension.AccountName).Msg("Pension created")
	return c.JSON(http.StatusCreated, toPensionResponse(*pension))
}

// UpdatePension handles PUT /api/v1/investments/pensions/:id
// @Summary Update a pension
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Pension ID"
// @Param request body PensionRequest true "Pension"
// @Success 200 {object} PensionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /investments/pensions/{id} [put]
func (h *InvestmentHandler) UpdatePension(c echo.Context) error {
	var req PensionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	pension, err := h.investmentService.UpdatePension(c.Request().Context(), idParam(c), req.toInput())
	if err != nil {
		return respondError(c, err, "update pension")
	}
	return c.JSON(http.StatusOK, toPensionResponse(*pension))
}

// DeletePension handles DELETE /api/v1/investments/pensions/:id
// @Summary Delete a pension
// @Tags investments
// @Param id path string true "Pension ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /investments/pensions/{id} [delete]
func (h *InvestmentHandler) DeletePension(c echo.Context) error {
	if err := h.investmentService.DeletePension(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete pension")
	}
	return c.NoContent(http.StatusNoContent)
}

// TogglePensionIgnored handles PATCH /api/v1/investments/pensions/:id/toggle-ignored
// @Summary Include or exclude a pension from the allocation
// @Tags investments
// @Produce json
// @Param id path string true "Pension ID"
// @Success 200 {object} PensionResponse
// @Failure 404 {object} ProblemDetails
// @Router /investments/pensions/{id}/toggle-ignored [patch]
func (h *InvestmentHandler) TogglePensionIgnored(c echo.Context) error {
	pension, err := h.investmentService.TogglePensionIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update pension")
	}
	return c.JSON(http.StatusOK, toPensionResponse(*pension))
}

// ReplaceInvestments handles PUT /api/v1/investments
// @Summary Replace the investments category
// @Tags investments
// @Accept json
// @Produce json
// @Param request body domain.Investments true "Investments"
// @Success 200 {object} domain.Investments
// @Failure 400 {object} ProblemDetails
// @Router /investments [put]
func (h *InvestmentHandler) ReplaceInvestments(c echo.Context) error {
	inv := domain.DefaultInvestments()
	if err := c.Bind(inv); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if inv.Investments == nil {
		inv.Investments = []domain.InvestmentAccount{}
	}
	if inv.Pensions == nil {
		inv.Pensions = []domain.PensionAccount{}
	}

	saved, err := h.investmentService.ReplaceInvestments(c.Request().Context(), inv)
	if err != nil {
		return respondError(c, err, "replace investments")
	}
	return c.JSON(http.StatusOK, saved)
}
