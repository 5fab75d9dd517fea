package validator

import (
	"strings"

	"invoiceqc/internal/domain"
)

// requiredFieldRule checks that one required field is present and non-empty.
// For string fields presence means non-empty after trimming; for numeric
// fields it means set at all — zero is an acceptable value.
type requiredFieldRule struct {
	field   string
	present func(*domain.Invoice) bool
}

func (r *requiredFieldRule) Key() string  { return "required." + r.field }
func (r *requiredFieldRule) Name() string { return "Required: " + r.field }
func (r *requiredFieldRule) Class() Class { return ClassDisqualifying }

func (r *requiredFieldRule) Validate(inv *domain.Invoice) []string {
	if r.present(inv) {
		return nil
	}
	return []string{"missing:" + r.field}
}

func strSet(s string) bool {
	return strings.TrimSpace(s) != ""
}

func optStrSet(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// RequiredFieldRules returns the completeness rules in evaluation order.
func RequiredFieldRules() []Rule {
	return []Rule{
		&requiredFieldRule{field: "invoice_number", present: func(inv *domain.Invoice) bool { return strSet(inv.InvoiceNumber) }},
		&requiredFieldRule{field: "invoice_date", present: func(inv *domain.Invoice) bool { return optStrSet(inv.InvoiceDate) }},
		&requiredFieldRule{field: "seller_name", present: func(inv *domain.Invoice) bool { return strSet(inv.SellerName) }},
		&requiredFieldRule{field: "buyer_name", present: func(inv *domain.Invoice) bool { return strSet(inv.BuyerName) }},
		&requiredFieldRule{field: "currency", present: func(inv *domain.Invoice) bool { return optStrSet(inv.Currency) }},
		&requiredFieldRule{field: "gross_total", present: func(inv *domain.Invoice) bool { return inv.GrossTotal != nil }},
	}
}
