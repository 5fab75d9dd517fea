package extractor

import (
	"regexp"
	"strings"
)

var currencyCodeRe = regexp.MustCompile(`\b(INR|EUR|USD|GBP|CHF|JPY)\b`)

// currencySymbols maps symbols to ISO codes, checked in this order.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"₹", "INR"},
	{"€", "EUR"},
	{"$", "USD"},
	{"£", "GBP"},
}

// detectCurrency infers the currency from an explicit ISO-like code first,
// then from a currency symbol. Returns "" when neither is present; the
// validator reports the missing field downstream.
func detectCurrency(text string) string {
	if m := currencyCodeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	for _, s := range currencySymbols {
		if strings.Contains(text, s.symbol) {
			return s.code
		}
	}
	return ""
}
