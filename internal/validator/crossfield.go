package validator

import (
	"math"

	"invoiceqc/internal/domain"
)

const (
	relTolerance = 0.01
	absTolerance = 0.01
)

// withinTolerance reports whether diff is inside the 1% relative tolerance
// measured against ref, falling back to an absolute tolerance of 0.01 when
// ref is zero.
func withinTolerance(diff, ref float64) bool {
	if ref == 0 {
		return math.Abs(diff) <= absTolerance
	}
	return math.Abs(diff) <= relTolerance*math.Abs(ref)
}

// crossFieldRule checks an arithmetic or ordering relationship between
// fields. The check closure returns the codes to emit, or nil.
type crossFieldRule struct {
	key   string
	name  string
	check func(*domain.Invoice) []string
}

func (r *crossFieldRule) Key() string  { return r.key }
func (r *crossFieldRule) Name() string { return r.name }
func (r *crossFieldRule) Class() Class { return ClassDisqualifying }

func (r *crossFieldRule) Validate(inv *domain.Invoice) []string {
	return r.check(inv)
}

// CrossFieldRules returns the business rules in evaluation order.
func CrossFieldRules() []Rule {
	return []Rule{
		&crossFieldRule{
			// net + tax ≈ gross, only when all three are present.
			key: "business.net_tax_gross", name: "Business: net+tax vs gross",
			check: func(inv *domain.Invoice) []string {
				if inv.NetTotal == nil || inv.TaxAmount == nil || inv.GrossTotal == nil {
					return nil
				}
				if withinTolerance(*inv.NetTotal+*inv.TaxAmount-*inv.GrossTotal, *inv.GrossTotal) {
					return nil
				}
				return []string{"business:net_tax_gross_mismatch"}
			},
		},
		&crossFieldRule{
			// sum of usable line totals ≈ net. Items without a line total
			// are excluded from the sum, not treated as zero.
			key: "business.line_items_net", name: "Business: line items vs net",
			check: func(inv *domain.Invoice) []string {
				if inv.NetTotal == nil {
					return nil
				}
				var sum float64
				usable := false
				for i := range inv.LineItems {
					if lt := inv.LineItems[i].LineTotal; lt != nil {
						sum += *lt
						usable = true
					}
				}
				if !usable {
					return nil
				}
				if withinTolerance(sum-*inv.NetTotal, *inv.NetTotal) {
					return nil
				}
				return []string{"business:line_items_net_mismatch"}
			},
		},
		&crossFieldRule{
			// due date must not precede the invoice date. Runs only when
			// both dates parse; unparseable dates are the format rule's job.
			key: "business.due_ordering", name: "Business: due date ordering",
			check: func(inv *domain.Invoice) []string {
				if !optStrSet(inv.InvoiceDate) || !optStrSet(inv.DueDate) {
					return nil
				}
				invDate, err := parseDate(*inv.InvoiceDate)
				if err != nil {
					return nil
				}
				dueDate, err := parseDate(*inv.DueDate)
				if err != nil {
					return nil
				}
				if dueDate.Before(invDate) {
					return []string{"business:due_before_invoice"}
				}
				return nil
			},
		},
	}
}
