package validator

import (
	"fmt"

	"invoiceqc/internal/domain"
)

// Engine runs the registered rules over a batch. It never mutates the
// batch; independent batches may be validated concurrently on one Engine.
type Engine struct {
	registry *Registry
}

// NewEngine creates an engine over an explicit registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine with the built-in rule pipeline in its
// fixed evaluation order: completeness, format, negativity anomalies,
// business rules, then the batch-wide duplicate rule.
func NewDefaultEngine() *Engine {
	registry := NewRegistry()
	for _, r := range RequiredFieldRules() {
		registry.Register(r)
	}
	for _, r := range FormatRules() {
		registry.Register(r)
	}
	for _, r := range NegativeAmountRules() {
		registry.Register(r)
	}
	for _, r := range CrossFieldRules() {
		registry.Register(r)
	}
	for _, r := range BatchRules() {
		registry.RegisterBatch(r)
	}
	return NewEngine(registry)
}

// ValidateBatch produces exactly one ValidationResult per input invoice, in
// input order, plus the aggregate summary. Same batch in, same output out.
func (e *Engine) ValidateBatch(batch []domain.Invoice) (domain.Summary, []domain.ValidationResult) {
	results := make([]domain.ValidationResult, len(batch))
	seen := make([]map[string]bool, len(batch))

	for i := range batch {
		inv := &batch[i]
		results[i] = domain.ValidationResult{
			InvoiceID: invoiceID(inv, i),
			IsValid:   true,
			Errors:    []string{},
		}
		seen[i] = make(map[string]bool)

		for _, rule := range e.registry.Rules() {
			appendCodes(&results[i], seen[i], rule.Class(), rule.Validate(inv))
		}
	}

	for _, rule := range e.registry.BatchRules() {
		perInvoice := rule.ValidateBatch(batch)
		for i := range batch {
			if i < len(perInvoice) {
				appendCodes(&results[i], seen[i], rule.Class(), perInvoice[i])
			}
		}
	}

	summary := domain.Summary{Total: len(batch)}
	for i := range results {
		if results[i].IsValid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}
	return summary, results
}

// appendCodes adds codes to a result, deduplicating while preserving the
// rule-evaluation order. Only disqualifying codes flip the verdict.
func appendCodes(res *domain.ValidationResult, seen map[string]bool, class Class, codes []string) {
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		res.Errors = append(res.Errors, code)
		if class == ClassDisqualifying {
			res.IsValid = false
		}
	}
}

// invoiceID derives the result identifier: the invoice number when set,
// then the source document, then a positional placeholder.
func invoiceID(inv *domain.Invoice, index int) string {
	if strSet(inv.InvoiceNumber) {
		return inv.InvoiceNumber
	}
	if strSet(inv.SourceFile) {
		return inv.SourceFile
	}
	return fmt.Sprintf("invoice[%d]", index)
}
