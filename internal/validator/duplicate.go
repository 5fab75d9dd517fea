package validator

import (
	"strings"

	"invoiceqc/internal/domain"
)

// duplicateKey is the composite grouping key for duplicate detection. It
// exists only when all three components are present: equality over absent
// data is meaningless, so such invoices never join a duplicate group.
type duplicateKey struct {
	invoiceNumber string
	sellerName    string
	invoiceDate   string
}

func duplicateKeyFor(inv *domain.Invoice) (duplicateKey, bool) {
	if !strSet(inv.InvoiceNumber) || !strSet(inv.SellerName) || !optStrSet(inv.InvoiceDate) {
		return duplicateKey{}, false
	}
	return duplicateKey{
		invoiceNumber: strings.TrimSpace(inv.InvoiceNumber),
		sellerName:    strings.TrimSpace(inv.SellerName),
		invoiceDate:   strings.TrimSpace(*inv.InvoiceDate),
	}, true
}

// duplicateRule flags every member of a group sharing the same
// (invoice_number, seller_name, invoice_date) triple. It only annotates;
// records are never removed or merged.
type duplicateRule struct{}

func (r *duplicateRule) Key() string  { return "anomaly.duplicate_invoice" }
func (r *duplicateRule) Name() string { return "Anomaly: duplicate invoice" }
func (r *duplicateRule) Class() Class { return ClassAdvisory }

func (r *duplicateRule) ValidateBatch(batch []domain.Invoice) [][]string {
	groups := make(map[duplicateKey][]int)
	for i := range batch {
		if key, ok := duplicateKeyFor(&batch[i]); ok {
			groups[key] = append(groups[key], i)
		}
	}

	codes := make([][]string, len(batch))
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, idx := range members {
			codes[idx] = []string{"anomaly:duplicate_invoice"}
		}
	}
	return codes
}

// BatchRules returns the batch-level rules in evaluation order.
func BatchRules() []BatchRule {
	return []BatchRule{&duplicateRule{}}
}
