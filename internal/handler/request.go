package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/domain"
	"github.com/dafibh/budget-tracker/budget-backend/internal/util"
)

// idParam reads the :id path parameter
func idParam(c echo.Context) domain.ID {
	return domain.ID(c.Param("id"))
}

// nullAmount converts an optional request amount for services that leave
// absent fields unchanged
func nullAmount(a util.Amount) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: a.Decimal, Valid: a.Set}
}

// dateFields parses request dates into their targets. Fields that fail to
// parse are returned as validation errors.
func dateFields(fields ...dateField) []ValidationError {
	var errs []ValidationError
	for _, f := range fields {
		date, err := domain.ParseDate(f.value)
		if err != nil {
			errs = append(errs, ValidationError{Field: f.name, Message: "Must be a date in YYYY-MM-DD format"})
			continue
		}
		*f.target = date
	}
	return errs
}

type dateField struct {
	name   string
	value  string
	target *domain.Date
}
