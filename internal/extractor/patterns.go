package extractor

import (
	"regexp"
	"strings"
)

// fieldPattern is one labeled matcher for a target field. Patterns for a
// field are tried in declaration order and the first match anywhere in the
// text wins, so the most specific pattern must come first.
type fieldPattern struct {
	re    *regexp.Regexp
	group int // capture group holding the value
}

func pat(expr string) fieldPattern {
	return fieldPattern{re: regexp.MustCompile(expr), group: 1}
}

func patGroup(expr string, group int) fieldPattern {
	return fieldPattern{re: regexp.MustCompile(expr), group: group}
}

// firstMatch tries each pattern in order and returns the trimmed value of
// the first one that matches, or "" if none match.
func firstMatch(patterns []fieldPattern, text string) string {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		idx := p.group
		if idx >= len(m) {
			idx = len(m) - 1
		}
		return strings.TrimSpace(m[idx])
	}
	return ""
}

// dateToken matches both day-first and ISO-ordered date spellings; the
// validator decides later whether the value is well formed.
const dateToken = `[0-9]{1,2}[./-][0-9]{1,2}[./-][0-9]{2,4}|[0-9]{4}[./-][0-9]{1,2}[./-][0-9]{1,2}`

// Header field patterns. The first entries are tuned for the German B2B
// order/invoice layout ("Bestellung AUFNR… vom …", "Gesamtwert EUR …");
// the later entries are generic label:value fallbacks for other layouts.
var (
	invoiceNumberPatterns = []fieldPattern{
		pat(`Bestellung\s+AUFNR(\S+)`),
		patGroup(`(?i)Invoice\s*(No\.?|Number|#)\s*[:\-]?\s*(\S+)`, 2),
	}

	invoiceDatePatterns = []fieldPattern{
		pat(`Bestellung\s+AUFNR\S+\s+vom\s+([0-9]{1,2}\.[0-9]{1,2}\.[0-9]{4})`),
		pat(`(?i)Invoice Date\s*[:\-]?\s*(` + dateToken + `)`),
		pat(`(?i)Dated\s*[:\-]?\s*(` + dateToken + `)`),
	}

	dueDatePatterns = []fieldPattern{
		pat(`(?i)Due Date\s*[:\-]?\s*(` + dateToken + `)`),
		pat(`(?i)Payment Due\s*[:\-]?\s*(` + dateToken + `)`),
	}

	sellerNamePatterns = []fieldPattern{
		pat(`(?m)^(.*?)\s+Bestellung\s+AUFNR`),
		pat(`(?im)^Seller\s*[:\-]?\s*(.+)$`),
		pat(`(?im)^Supplier\s*[:\-]?\s*(.+)$`),
		pat(`(?im)^From\s*[:\-]?\s*(.+)$`),
	}

	buyerNamePatterns = []fieldPattern{
		pat(`(?m)^(.*?)\s+·[^\n]*Kundenanschrift`),
		pat(`(?im)^Buyer\s*[:\-]?\s*(.+)$`),
		pat(`(?im)^Customer\s*[:\-]?\s*(.+)$`),
		pat(`(?im)^Bill To\s*[:\-]?\s*(.+)$`),
		pat(`(?im)^Ship To\s*[:\-]?\s*(.+)$`),
	}

	sellerTaxIDPatterns = []fieldPattern{
		patGroup(`(GSTIN|VAT No\.?|Tax ID)\s*[:\-]?\s*([A-Z0-9]+)`, 2),
	}

	buyerTaxIDPatterns = []fieldPattern{
		patGroup(`(?i)Buyer\s+(GSTIN|VAT No\.?|Tax ID)\s*[:\-]?\s*([A-Z0-9]+)`, 2),
		patGroup(`(?i)Customer\s+(GSTIN|VAT No\.?|Tax ID)\s*[:\-]?\s*([A-Z0-9]+)`, 2),
	}

	externalReferencePatterns = []fieldPattern{
		pat(`im Auftrag von\s+(\S+)`),
		pat(`(?i)(?:Reference|Ref\.? No\.?|PO Number|Order No\.?)\s*[:\-]?\s*(\S+)`),
	}

	netTotalPatterns = []fieldPattern{
		pat(`Gesamtwert\s+EUR\s+([0-9.,]+)`),
		patGroup(`(?i)(Net Total|Sub Total|Subtotal)\s*[:\-]?\s*([0-9,]+(?:\.[0-9]+)?)`, 2),
	}

	taxAmountPatterns = []fieldPattern{
		pat(`MwSt\.\s*[0-9,]+%\s+EUR\s+([0-9.,]+)`),
		patGroup(`(?im)^(Tax|VAT|GST)[^\r\n]*?[:\-]?\s*([0-9,]+(?:\.[0-9]+)?)\s*$`, 2),
	}

	// Anchored to line start so "Subtotal" can never satisfy the bare
	// "Total" fallback.
	grossTotalPatterns = []fieldPattern{
		pat(`Gesamtwert inkl\. MwSt\.\s+EUR\s+([0-9.,]+)`),
		patGroup(`(?im)^(Grand Total|Total Amount Payable|Invoice Total|Total)\s*[:\-]?\s*([0-9,]+(?:\.[0-9]+)?)\s*$`, 2),
	}
)
