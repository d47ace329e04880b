// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount renders a currency amount with comma separators and a
// dollar sign. e.g., 850000 -> "$850,000"
func FormatAmount(n int64) string {
	if n < 0 {
		return "-" + FormatAmount(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatXPDelta renders a signed XP change with an explicit plus sign.
// e.g., 20 -> "+20 XP", -10 -> "-10 XP"
func FormatXPDelta(delta int64) string {
	if delta >= 0 {
		return fmt.Sprintf("+%d XP", delta)
	}
	return fmt.Sprintf("%d XP", delta)
}

// FormatPercent renders an uncapped percentage with no decimals.
// e.g., 150.0 -> "150%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}
