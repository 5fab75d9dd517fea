// Package extractor maps raw document text into structured invoice records
// using ordered heuristic pattern rules. Extraction is best-effort and never
// fails: fields that cannot be recognized stay unset and the validation
// engine is the designated place to report them.
package extractor

import (
	"strings"

	"invoiceqc/internal/domain"
)

// Engine is the field extraction engine. It is stateless; a single Engine
// may be shared across goroutines.
type Engine struct{}

// NewEngine creates an extraction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ExtractDocument extracts zero or more invoices from one document's full
// text. Documents are split into segments on form-feed page boundaries;
// each segment with at least one recognizable field yields an invoice.
// A document with no recognizable invoice content yields no records.
func (e *Engine) ExtractDocument(sourceFile, text string) []domain.Invoice {
	var invoices []domain.Invoice
	for _, segment := range splitSegments(text) {
		inv, ok := extractSegment(segment)
		if !ok {
			continue
		}
		inv.SourceFile = sourceFile
		invoices = append(invoices, inv)
	}
	return invoices
}

// Placeholder returns the record emitted for a document whose content could
// not be read at all. Every field is left unset so validation reports the
// document as incomplete instead of the pipeline dropping it silently.
func (e *Engine) Placeholder(sourceFile string) domain.Invoice {
	return domain.Invoice{SourceFile: sourceFile, LineItems: []domain.LineItem{}}
}

func splitSegments(text string) []string {
	if !strings.Contains(text, "\f") {
		return []string{text}
	}
	var segments []string
	for _, s := range strings.Split(text, "\f") {
		if strings.TrimSpace(s) != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// extractSegment runs every field matcher over one segment. The boolean is
// false when nothing at all was recognized.
func extractSegment(text string) (domain.Invoice, bool) {
	inv := domain.Invoice{LineItems: []domain.LineItem{}}
	matched := 0

	if v := firstMatch(invoiceNumberPatterns, text); v != "" {
		inv.InvoiceNumber = v
		matched++
	}
	if v := firstMatch(invoiceDatePatterns, text); v != "" {
		inv.InvoiceDate = domain.StrPtr(v)
		matched++
	}
	if v := firstMatch(dueDatePatterns, text); v != "" {
		inv.DueDate = domain.StrPtr(v)
		matched++
	}
	if v := firstMatch(sellerNamePatterns, text); v != "" {
		inv.SellerName = v
		matched++
	}
	if v := firstMatch(buyerNamePatterns, text); v != "" {
		inv.BuyerName = v
		matched++
	}
	if v := firstMatch(sellerTaxIDPatterns, text); v != "" {
		inv.SellerTaxID = domain.StrPtr(v)
		matched++
	}
	if v := firstMatch(buyerTaxIDPatterns, text); v != "" {
		inv.BuyerTaxID = domain.StrPtr(v)
		matched++
	}
	if v := firstMatch(externalReferencePatterns, text); v != "" {
		inv.ExternalReference = domain.StrPtr(v)
		matched++
	}
	if v := detectCurrency(text); v != "" {
		inv.Currency = domain.StrPtr(v)
		matched++
	}
	if v := parseAmount(firstMatch(netTotalPatterns, text)); v != nil {
		inv.NetTotal = v
		matched++
	}
	if v := parseAmount(firstMatch(taxAmountPatterns, text)); v != nil {
		inv.TaxAmount = v
		matched++
	}
	if v := parseAmount(firstMatch(grossTotalPatterns, text)); v != nil {
		inv.GrossTotal = v
		matched++
	}

	if items := extractLineItems(text); len(items) > 0 {
		inv.LineItems = items
		matched++
	}

	return inv, matched > 0
}
