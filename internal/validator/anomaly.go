package validator

import (
	"invoiceqc/internal/domain"
)

// negativeAmountRule flags present negative monetary values. A negative
// total is plausible on a credit note, so the finding is advisory and does
// not suppress any other check.
type negativeAmountRule struct {
	field   string
	extract func(*domain.Invoice) *float64
}

func (r *negativeAmountRule) Key() string  { return "anomaly.negative_" + r.field }
func (r *negativeAmountRule) Name() string { return "Anomaly: negative " + r.field }
func (r *negativeAmountRule) Class() Class { return ClassAdvisory }

func (r *negativeAmountRule) Validate(inv *domain.Invoice) []string {
	v := r.extract(inv)
	if v == nil || *v >= 0 {
		return nil
	}
	return []string{"anomaly:negative_" + r.field}
}

// NegativeAmountRules returns the non-negativity anomaly rules in
// evaluation order.
func NegativeAmountRules() []Rule {
	return []Rule{
		&negativeAmountRule{field: "net_total", extract: func(inv *domain.Invoice) *float64 { return inv.NetTotal }},
		&negativeAmountRule{field: "tax_amount", extract: func(inv *domain.Invoice) *float64 { return inv.TaxAmount }},
		&negativeAmountRule{field: "gross_total", extract: func(inv *domain.Invoice) *float64 { return inv.GrossTotal }},
	}
}
