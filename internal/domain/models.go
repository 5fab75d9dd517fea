package domain

// Invoice is the structured representation of one extracted invoice.
// Optional fields use pointers so that an unset value stays distinguishable
// from a genuine zero or empty string; extraction never fills defaults.
type Invoice struct {
	InvoiceNumber     string   `json:"invoice_number"`
	ExternalReference *string  `json:"external_reference,omitempty"`
	InvoiceDate       *string  `json:"invoice_date,omitempty"`
	DueDate           *string  `json:"due_date,omitempty"`
	SellerName        string   `json:"seller_name"`
	SellerTaxID       *string  `json:"seller_tax_id,omitempty"`
	BuyerName         string   `json:"buyer_name"`
	BuyerTaxID        *string  `json:"buyer_tax_id,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
	NetTotal          *float64 `json:"net_total,omitempty"`
	TaxAmount         *float64 `json:"tax_amount,omitempty"`
	GrossTotal        *float64 `json:"gross_total,omitempty"`

	// LineItems keeps source order; an empty list is a valid outcome.
	LineItems []LineItem `json:"line_items"`

	// SourceFile is the loader-supplied document ID the invoice came from.
	// It doubles as the invoice_id fallback when invoice_number is absent.
	SourceFile string `json:"source_file,omitempty"`
}

// LineItem is a single row from the invoice's line-item section.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	LineTotal   *float64 `json:"line_total,omitempty"`
}

// ValidationResult is the per-invoice verdict, one per batch member, in
// batch order.
type ValidationResult struct {
	InvoiceID string   `json:"invoice_id"`
	IsValid   bool     `json:"is_valid"`
	Errors    []string `json:"errors"`
}

// Summary aggregates a batch verdict. Valid+Invalid always equals Total.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Report is the validation report written by the CLI and returned by the API.
type Report struct {
	Summary Summary            `json:"summary"`
	Results []ValidationResult `json:"results"`
}

// ExtractionReport is the response of the combined extract+validate operation.
type ExtractionReport struct {
	ExtractedInvoices []Invoice          `json:"extracted_invoices"`
	Summary           Summary            `json:"summary"`
	Results           []ValidationResult `json:"results"`
}

// StrPtr returns a pointer to s. Convenience for building invoices in tests
// and extraction code.
func StrPtr(s string) *string { return &s }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
