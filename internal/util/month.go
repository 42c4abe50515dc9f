package util

import (
	"time"

	"github.com/shopspring/decimal"
)

// AverageDaysPerMonth is the month length used when estimating how many
// months remain until a date.
var AverageDaysPerMonth = decimal.RequireFromString("30.44")

// MonthsBetween returns the number of average-length months from `from`
// until `to`, rounded up. Dates on or before `from` yield 0.
func MonthsBetween(from, to time.Time) int64 {
	days := int64(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return decimal.NewFromInt(days).Div(AverageDaysPerMonth).Ceil().IntPart()
}

// DaysBetween returns the number of whole days from `from` until `to`.
func DaysBetween(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}
