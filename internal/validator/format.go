package validator

import (
	"fmt"
	"strings"
	"time"

	"invoiceqc/internal/domain"
)

// dateFormats is the fixed ordered list of accepted layouts; the first
// successful parse wins.
var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
}

var (
	dateRangeMin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	dateRangeMax = time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// allowedCurrencies is the supported currency set after normalization.
var allowedCurrencies = map[string]bool{
	"INR": true, "EUR": true, "USD": true, "GBP": true, "CHF": true, "JPY": true,
}

// parseDate parses a raw date string against the fixed format list. The
// error carries no detail callers need; a nil error means in-format.
func parseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, f := range dateFormats {
		if t, err := time.Parse(f, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

// inDateRange reports whether t falls within [2000-01-01, 2100-01-01].
func inDateRange(t time.Time) bool {
	return !t.Before(dateRangeMin) && !t.After(dateRangeMax)
}

// dateFormatRule checks one raw date field for parseability and range.
// Absent fields pass; completeness is a separate rule.
type dateFormatRule struct {
	field   string
	extract func(*domain.Invoice) *string
}

func (r *dateFormatRule) Key() string  { return "format." + r.field }
func (r *dateFormatRule) Name() string { return "Format: " + r.field }
func (r *dateFormatRule) Class() Class { return ClassDisqualifying }

func (r *dateFormatRule) Validate(inv *domain.Invoice) []string {
	raw := r.extract(inv)
	if !optStrSet(raw) {
		return nil
	}
	t, err := parseDate(*raw)
	if err != nil || !inDateRange(t) {
		return []string{"format:" + r.field}
	}
	return nil
}

// currencyFormatRule re-validates the normalized currency against the
// allowed set. Extraction already normalizes symbols to codes, but batches
// arriving over the transport layer bypass extraction entirely.
type currencyFormatRule struct{}

func (r *currencyFormatRule) Key() string  { return "format.currency" }
func (r *currencyFormatRule) Name() string { return "Format: currency" }
func (r *currencyFormatRule) Class() Class { return ClassDisqualifying }

func (r *currencyFormatRule) Validate(inv *domain.Invoice) []string {
	if !optStrSet(inv.Currency) {
		return nil
	}
	if !allowedCurrencies[strings.ToUpper(strings.TrimSpace(*inv.Currency))] {
		return []string{"format:currency"}
	}
	return nil
}

// FormatRules returns the format rules in evaluation order.
func FormatRules() []Rule {
	return []Rule{
		&dateFormatRule{field: "invoice_date", extract: func(inv *domain.Invoice) *string { return inv.InvoiceDate }},
		&dateFormatRule{field: "due_date", extract: func(inv *domain.Invoice) *string { return inv.DueDate }},
		&currencyFormatRule{},
	}
}
