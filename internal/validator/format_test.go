package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceqc/internal/domain"
	"invoiceqc/internal/validator"
)

func TestFormatRules_Count(t *testing.T) {
	assert.Len(t, validator.FormatRules(), 3)
}

func TestFormat_InvoiceDate_AcceptedLayouts(t *testing.T) {
	r := findRule(validator.FormatRules(), "format.invoice_date")
	require.NotNil(t, r)

	accepted := []string{
		"2024-03-12",
		"12-03-2024",
		"12/03/2024",
		"12.03.2024",
		"2024/03/12",
	}
	for _, raw := range accepted {
		t.Run(raw, func(t *testing.T) {
			inv := validInvoice()
			inv.InvoiceDate = domain.StrPtr(raw)
			assert.Empty(t, r.Validate(&inv))
		})
	}
}

func TestFormat_InvoiceDate_Rejected(t *testing.T) {
	r := findRule(validator.FormatRules(), "format.invoice_date")
	require.NotNil(t, r)

	rejected := []string{
		"12th March 2024",
		"2024-13-01",
		"32.01.2024",
		"not a date",
	}
	for _, raw := range rejected {
		t.Run(raw, func(t *testing.T) {
			inv := validInvoice()
			inv.InvoiceDate = domain.StrPtr(raw)
			assert.Equal(t, []string{"format:invoice_date"}, r.Validate(&inv))
		})
	}
}

func TestFormat_InvoiceDate_Range(t *testing.T) {
	r := findRule(validator.FormatRules(), "format.invoice_date")
	require.NotNil(t, r)

	cases := []struct {
		date string
		pass bool
	}{
		{"1999-12-31", false},
		{"2000-01-01", true},
		{"2100-01-01", true},
		{"2100-01-02", false},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			inv := validInvoice()
			inv.InvoiceDate = domain.StrPtr(tc.date)
			codes := r.Validate(&inv)
			if tc.pass {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, []string{"format:invoice_date"}, codes)
			}
		})
	}
}

func TestFormat_DueDate(t *testing.T) {
	r := findRule(validator.FormatRules(), "format.due_date")
	require.NotNil(t, r)

	t.Run("pass_absent", func(t *testing.T) {
		inv := validInvoice()
		inv.DueDate = nil
		assert.Empty(t, r.Validate(&inv))
	})

	t.Run("fail_garbage", func(t *testing.T) {
		inv := validInvoice()
		inv.DueDate = domain.StrPtr("soon")
		assert.Equal(t, []string{"format:due_date"}, r.Validate(&inv))
	})
}

func TestFormat_Currency(t *testing.T) {
	r := findRule(validator.FormatRules(), "format.currency")
	require.NotNil(t, r)

	t.Run("pass_allowed_codes", func(t *testing.T) {
		for _, code := range []string{"INR", "EUR", "USD", "GBP", "CHF", "JPY"} {
			inv := validInvoice()
			inv.Currency = domain.StrPtr(code)
			assert.Empty(t, r.Validate(&inv), code)
		}
	})

	t.Run("pass_lowercase_normalized", func(t *testing.T) {
		inv := validInvoice()
		inv.Currency = domain.StrPtr("eur")
		assert.Empty(t, r.Validate(&inv))
	})

	t.Run("pass_absent", func(t *testing.T) {
		inv := validInvoice()
		inv.Currency = nil
		assert.Empty(t, r.Validate(&inv))
	})

	t.Run("fail_unknown_code", func(t *testing.T) {
		inv := validInvoice()
		inv.Currency = domain.StrPtr("XYZ")
		assert.Equal(t, []string{"format:currency"}, r.Validate(&inv))
	})
}
