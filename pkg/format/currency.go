// Package format renders impact figures for display.
package format

import (
	"math"

	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/shopspring/decimal"
)

// Fixed2 renders a value with two decimals, rounding half away from zero.
// Non-finite values render as "Infinity", "-Infinity" and "NaN".
func Fixed2(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(amount).StringFixed(constants.DisplayPlaces)
}

