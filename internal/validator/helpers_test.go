package validator_test

import (
	"invoiceqc/internal/domain"
	"invoiceqc/internal/validator"
)

// validInvoice returns an invoice that passes every rule. Tests break one
// field at a time from this baseline.
func validInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceNumber: "INV-001",
		InvoiceDate:   domain.StrPtr("2024-03-12"),
		DueDate:       domain.StrPtr("2024-04-11"),
		SellerName:    "Acme GmbH",
		BuyerName:     "Globex LLC",
		Currency:      domain.StrPtr("EUR"),
		NetTotal:      domain.FloatPtr(100),
		TaxAmount:     domain.FloatPtr(19),
		GrossTotal:    domain.FloatPtr(119),
		LineItems: []domain.LineItem{
			{Description: "Widget", Quantity: domain.FloatPtr(4), UnitPrice: domain.FloatPtr(25), LineTotal: domain.FloatPtr(100)},
		},
		SourceFile: "inv001.txt",
	}
}

func findRule(rules []validator.Rule, key string) validator.Rule {
	for _, r := range rules {
		if r.Key() == key {
			return r
		}
	}
	return nil
}
