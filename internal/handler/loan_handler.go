package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// LoanHandler handles loan-related HTTP requests
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// LoanRequest represents the create and update loan request body
type LoanRequest struct {
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	MonthlyPayment util.Amount `json:"monthly_payment" swaggertype:"string"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
}

// LoanCategoriesResponse lists the suggested loan categories
type LoanCategoriesResponse struct {
	Categories []string `json:"categories"`
}

func (r LoanRequest) toInput() (service.LoanInput, []ValidationError) {
	input := service.LoanInput{
		Name:           r.Name,
		Category:       r.Category,
		MonthlyPayment: r.MonthlyPayment.Decimal,
	}
	errs := dateFields(
		dateField{"start_date", r.StartDate, &input.StartDate},
		dateField{"end_date", r.EndDate, &input.EndDate},
	)
	return input, errs
}

// ListLoans handles GET /api/v1/loans
// @Summary List loans
// @Description Progress and completion are computed as of today
// @Tags loans
// @Produce json
// @Success 200 {array} domain.Loan
// @Failure 500 {object} ProblemDetails
// @Router /loans [get]
func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.loanService.ListLoans(c.Request().Context())
	if err != nil {
		return respondError(c, err, "get loans")
	}
	return c.JSON(http.StatusOK, loans)
}

// GetLoanCategories handles GET /api/v1/loans/categories
// @Summary Suggested loan categories
// @Tags loans
// @Produce json
// @Success 200 {object} LoanCategoriesResponse
// @Router /loans/categories [get]
func (h *LoanHandler) GetLoanCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, LoanCategoriesResponse{Categories: domain.LoanCategories})
}

// GetLoan handles GET /api/v1/loans/:id
// @Summary Get a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id} [get]
func (h *LoanHandler) GetLoan(c echo.Context) error {
	loan, err := h.loanService.GetLoan(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "get loan")
	}
	return c.JSON(http.StatusOK, loan)
}

// CreateLoan handles POST /api/v1/loans
// @Summary Add a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param request body LoanRequest true "Loan"
// @Success 201 {object} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req LoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	loan, err := h.loanService.CreateLoan(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err, "create loan")
	}

	log.Info().Str("loan_id", string(loan.ID)).Str("name", loan.Name).Msg("Loan created")
	return c.JSON(http.StatusCreated, loan)
}

// UpdateLoan handles PUT /api/v1/loans/:id
// @Summary Update a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param request body LoanRequest true "Loan"
// @Success 200 {object} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req LoanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	loan, err := h.loanService.UpdateLoan(c.Request().Context(), idParam(c), input)
	if err != nil {
		return respondError(c, err, "update loan")
	}
	return c.JSON(http.StatusOK, loan)
}

// DeleteLoan handles DELETE /api/v1/loans/:id
// @Summary Delete a loan
// @Tags loans
// @Param id path string true "Loan ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id} [delete]
func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.loanService.DeleteLoan(c.Request().Context(), idParam(c)); err != nil {
		return respondError(c, err, "delete loan")
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleIgnored handles PATCH /api/v1/loans/:id/toggle-ignored
// @Summary Include or exclude a loan from totals
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} ProblemDetails
// @Router /loans/{id}/toggle-ignored [patch]
func (h *LoanHandler) ToggleIgnored(c echo.Context) error {
	loan, err := h.loanService.ToggleLoanIgnored(c.Request().Context(), idParam(c))
	if err != nil {
		return respondError(c, err, "update loan")
	}
	return c.JSON(http.StatusOK, loan)
}

// SortLoans handles POST /api/v1/loans/sort
// @Summary Sort loans
// @Tags loans
// @Produce json
// @Param order query string false "name, payment_asc or payment_desc" default(name)
// @Success 200 {array} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Router /loans/sort [post]
func (h *LoanHandler) SortLoans(c echo.Context) error {
	order, err := service.ParseLoanSortOrder(c.QueryParam("order"))
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "order", Message: "Must be name, payment_asc or payment_desc"},
		})
	}

	loans, err := h.loanService.SortLoans(c.Request().Context(), order)
	if err != nil {
		return respondError(c, err, "sort loans")
	}
	return c.JSON(http.StatusOK, loans)
}

// ReplaceLoans handles PUT /api/v1/loans
// @Summary Replace every loan
// @Tags loans
// @Accept json
// @Produce json
// @Param request body []domain.Loan true "Loans"
// @Success 200 {array} domain.Loan
// @Failure 400 {object} ProblemDetails
// @Router /loans [put]
func (h *LoanHandler) ReplaceLoans(c echo.Context) error {
	var loans []domain.Loan
	if err := c.Bind(&loans); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if loans == nil {
		loans = []domain.Loan{}
	}

	saved, err := h.loanService.ReplaceLoans(c.Request().Context(), loans)
	if err != nil {
		return respondError(c, err, "replace loans")
	}
	return c.JSON(http.StatusOK, saved)
}
