// Package format provides string formatting helpers for monetary amounts.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Forint returns a Hungarian forint string with space-grouped thousands and a
// comma decimal separator (e.g., "-1 234 567,89 Ft").
func Forint(amount float64) string {
	formatted := formatPositiveAmount(math.Abs(amount))
	if amount < 0 {
		return "-" + formatted + " Ft"
	}
	return formatted + " Ft"
}

// NumericForint returns the amount formatted like Forint but without the
// currency suffix (e.g., "-1 234 567,89").
func NumericForint(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveAmount(math.Abs(amount))
}

func formatPositiveAmount(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(' ')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "," + decPart
}
