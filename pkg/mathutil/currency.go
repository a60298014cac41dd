// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/impact-dashboard/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Sum adds values left to right at full precision.
func Sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Ratio divides numerator by denominator without guarding against zero, so
// the IEEE-754 result (+Inf, -Inf or NaN) is returned as-is.
func Ratio(numerator, denominator float64) float64 {
	return numerator / denominator
}

// IsFinite reports whether val is neither infinite nor NaN.
func IsFinite(val float64) bool {
	return !math.IsInf(val, 0) && !math.IsNaN(val)
}
