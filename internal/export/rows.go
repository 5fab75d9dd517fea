// Package export renders a validation report as CSV or XLSX for review
// outside the service.
package export

import (
	"strconv"
	"strings"

	"invoiceqc/internal/domain"
)

// columns defines the export header row.
var columns = []string{
	"Invoice ID",
	"Source File",
	"Invoice Number",
	"Invoice Date",
	"Due Date",
	"Seller Name",
	"Seller Tax ID",
	"Buyer Name",
	"Buyer Tax ID",
	"Currency",
	"Net Total",
	"Tax Amount",
	"Gross Total",
	"Line Item Count",
	"Valid",
	"Errors",
}

// reportRow flattens one invoice and its verdict into a row. The batch and
// the results are index-aligned by the engine's contract.
func reportRow(inv *domain.Invoice, res *domain.ValidationResult) []string {
	return []string{
		res.InvoiceID,
		inv.SourceFile,
		inv.InvoiceNumber,
		optStr(inv.InvoiceDate),
		optStr(inv.DueDate),
		inv.SellerName,
		optStr(inv.SellerTaxID),
		inv.BuyerName,
		optStr(inv.BuyerTaxID),
		optStr(inv.Currency),
		optFloat(inv.NetTotal),
		optFloat(inv.TaxAmount),
		optFloat(inv.GrossTotal),
		strconv.Itoa(len(inv.LineItems)),
		strconv.FormatBool(res.IsValid),
		strings.Join(res.Errors, "; "),
	}
}

func optStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
