package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation  = "https://budget-tracker.app/errors/validation"
	ErrorTypeNotFound    = "https://budget-tracker.app/errors/not-found"
	ErrorTypeUnavailable = "https://budget-tracker.app/errors/unavailable"
	ErrorTypeInternal    = "https://budget-tracker.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnavailableError creates a service unavailable error response
func NewUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// fieldErrors maps validation errors from the domain to the request field
// they concern
var fieldErrors = []struct {
	err   error
	field string
	msg   string
}{
	{domain.ErrNameRequired, "name", "Name is required"},
	{domain.ErrNameTooLong, "name", "Name must be 255 characters or less"},
	{domain.ErrIncomeSourceEmpty, "income_source", "Income source is required"},
	{domain.ErrAmountRequired, "amount", "Amount is required"},
	{domain.ErrNegativeAmount, "amount", "Amounts must not be negative"},
	{domain.ErrExpenseCostRequired, "monthly_cost", "Monthly or annual cost must be greater than zero"},
	{domain.ErrLoanCategoryRequired, "category", "Category is required"},
	{domain.ErrLoanPaymentRequired, "monthly_payment", "Monthly payment is required"},
	{domain.ErrLoanDatesRequired, "end_date", "Start and end dates are required"},
	{domain.ErrLoanDateOrder, "end_date", "End date must not be before start date"},
	{domain.ErrGoalTargetInvalid, "target_amount", "Target amount must be greater than zero"},
	{domain.ErrGoalDateRequired, "target_date", "Target date is required"},
	{domain.ErrAccountTypeRequired, "account_type", "Account type is required"},
	{domain.ErrPensionTypeRequired, "pension_type", "Pension type is required"},
	{domain.ErrInvalidDate, "date", "Dates must use YYYY-MM-DD"},
	{domain.ErrInvalidCategory, "category", "Unknown budget category"},
}

var notFoundErrors = []error{
	domain.ErrNotFound,
	domain.ErrIncomeNotFound,
	domain.ErrExpenseNotFound,
	domain.ErrLoanNotFound,
	domain.ErrGoalNotFound,
	domain.ErrAccountNotFound,
}

// respondError turns a service error into a problem response. Unknown
// errors are logged and reported as internal errors.
func respondError(c echo.Context, err error, action string) error {
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: fe.field, Message: fe.msg},
			})
		}
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			return NewNotFoundError(c, nf.Error())
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return NewValidationError(c, err.Error(), nil)
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}

func isValidationError(err error) bool {
	if errors.Is(err, domain.ErrInvalidInput) {
		return true
	}
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return true
		}
	}
	return false
}
