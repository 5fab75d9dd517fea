package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCurrency(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"iso_code", "Gesamtwert EUR 1.285,20", "EUR"},
		{"code_embedded", "Amount due: 500 USD net", "USD"},
		{"rupee_symbol", "Total: ₹ 1.200,00", "INR"},
		{"euro_symbol", "Summe € 99,95", "EUR"},
		{"dollar_symbol", "Total: $59.50", "USD"},
		{"pound_symbol", "Total: £42.00", "GBP"},
		{"code_beats_symbol", "Total: $59.50 USD", "USD"},
		{"none", "no money mentioned", ""},
		{"code_must_be_word", "EURO zone invoice", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detectCurrency(tc.text))
		})
	}
}
