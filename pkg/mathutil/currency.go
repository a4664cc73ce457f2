// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/rentworks/erp-metrics/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// CalculatePercentage calculates what percentage value is of total.
// A zero total yields zero rather than a division by zero.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// WholePercentage calculates the percentage of value in total rounded to the
// nearest integer. A zero total yields zero.
func WholePercentage(value, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(CalculatePercentage(value, total)))
}

// Sum adds up a slice of amounts without any rounding.
func Sum(amounts []float64) float64 {
	total := 0.0
	for _, amount := range amounts {
		total += amount
	}
	return total
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
