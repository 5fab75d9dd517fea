// Package validator runs a fixed pipeline of completeness, format,
// cross-field and batch-anomaly checks over a batch of invoices and
// produces a per-invoice verdict plus an aggregate summary.
package validator

import (
	"invoiceqc/internal/domain"
)

// Class tags what a rule's findings mean for the verdict. Disqualifying
// codes flip is_valid to false; Advisory codes (anomalies) only flag the
// invoice for human review. The verdict is computed from this tag, never
// by parsing the code text.
type Class int

const (
	ClassDisqualifying Class = iota
	ClassAdvisory
)

// Rule is a single per-invoice validation rule. Validate returns zero or
// more stable machine-readable error codes and must not mutate the invoice.
type Rule interface {
	Key() string
	Name() string
	Class() Class
	Validate(inv *domain.Invoice) []string
}

// BatchRule is a validation rule that needs to see the whole batch before
// it can emit codes for any member. ValidateBatch returns one code slice
// per batch index, in batch order.
type BatchRule interface {
	Key() string
	Name() string
	Class() Class
	ValidateBatch(batch []domain.Invoice) [][]string
}
