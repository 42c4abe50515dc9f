package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrAmountRequired      = errors.New("amount is required")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidCategory     = errors.New("unknown budget category")
	ErrCategoryNotFound    = errors.New("budget category not stored")
	ErrIncomeNotFound      = errors.New("income entry not found")
	ErrIncomeSourceEmpty   = errors.New("income source is required")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrExpenseCostRequired = errors.New("monthly or annual cost must be greater than zero")
	ErrGoalNotFound        = errors.New("savings goal not found")
	ErrGoalTargetInvalid   = errors.New("target amount must be greater than zero")
	ErrGoalDateRequired    = errors.New("target date is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountTypeRequired = errors.New("account type is required")
	ErrPensionTypeRequired = errors.New("pension type is required")
)

// Validation constants
const (
	MaxNameLength = 255
)
