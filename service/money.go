package service

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(MonthsPerYear)
)

func percentOf(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(hundred)
}

func sum(values ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, values...)
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
