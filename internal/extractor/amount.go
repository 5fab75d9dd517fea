package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var currencySymbolRe = regexp.MustCompile(`[₹$€£¥]`)

// parseAmount parses a numeric token tolerating currency symbols, spaces,
// thousands separators and both decimal-comma and decimal-point styles.
// A value that cannot be parsed is unset (nil), never an error.
func parseAmount(value string) *float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}
	cleaned = currencySymbolRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	switch {
	case strings.Contains(cleaned, ",") && strings.Contains(cleaned, "."):
		// European style: 1.285,20 → 1285.20
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Contains(cleaned, ","):
		// 64,00 → 64.00
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}
