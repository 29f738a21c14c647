package roster

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseArea reads a decimal written with either separator convention.
// The last of '.' or ',' is the decimal point; the other is grouping.
// Examples: "45,5" and "45.5" -> 45.5, "1.234,5" and "1,234.5" -> 1234.5.
func parseArea(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	if i := strings.LastIndexAny(clean, ".,"); i >= 0 && clean[i] == ',' {
		clean = strings.ReplaceAll(clean[:i], ".", "") + "." + clean[i+1:]
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
