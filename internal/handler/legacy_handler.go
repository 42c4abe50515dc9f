package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
)

// maxCategoryBody caps the size of a replace-all upload
const maxCategoryBody = 5 << 20

// CategoryHandler serves whole category documents on /api/:category for
// clients that read and write a category at a time
type CategoryHandler struct {
	budgetService *service.BudgetService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(budgetService *service.BudgetService) *CategoryHandler {
	return &CategoryHandler{budgetService: budgetService}
}

// SaveResult is the body returned by a replace-all write
type SaveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// GetCategory handles GET /api/:category
// @Summary Read a whole category
// @Tags categories
// @Produce json
// @Param category path string true "expenses, income, savings, loans or investments"
// @Success 200 {object} object
// @Failure 404 {object} ProblemDetails
// @Router /{category} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return NewNotFoundError(c, err.Error())
	}

	data, err := h.budgetService.GetCategory(c.Request().Context(), category)
	if err != nil {
		return respondError(c, err, "load "+string(category))
	}
	return c.JSONBlob(http.StatusOK, data)
}

// SaveCategory handles POST /api/:category
// @Summary Replace a whole category
// @Tags categories
// @Accept json
// @Produce json
// @Param category path string true "expenses, income, savings, loans or investments"
// @Success 200 {object} SaveResult
// @Failure 400 {object} SaveResult
// @Failure 500 {object} SaveResult
// @Router /{category} [post]
func (h *CategoryHandler) SaveCategory(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return NewNotFoundError(c, err.Error())
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxCategoryBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, SaveResult{Error: "could not read request body"})
	}

	if err := h.budgetService.ReplaceCategory(c.Request().Context(), category, body); err != nil {
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, SaveResult{Error: err.Error()})
		}
		log.Error().Err(err).Str("category", string(category)).Msg("Failed to save category")
		return c.JSON(http.StatusInternalServerError, SaveResult{Error: "failed to save " + string(category)})
	}

	log.Info().Str("category", string(category)).Int("bytes", len(body)).Msg("Category replaced")
	return c.JSON(http.StatusOK, SaveResult{Success: true})
}
