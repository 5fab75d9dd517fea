package extractor

import (
	"regexp"
	"strings"

	"invoiceqc/internal/domain"
)

var (
	descriptionHeaderRe = regexp.MustCompile(`(?i)description`)
	quantityHeaderRe    = regexp.MustCompile(`(?i)qty|quantity`)
	priceHeaderRe       = regexp.MustCompile(`(?i)rate|price`)
	totalRowRe          = regexp.MustCompile(`(?i)total`)
)

// extractLineItems locates a line-item section heuristically: a header line
// naming a description column plus a quantity or price column, followed by
// rows that end in a numeric token. Rows that don't parse are skipped; an
// empty result is a valid outcome.
func extractLineItems(text string) []domain.LineItem {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	headerIndex := -1
	for i, ln := range lines {
		if descriptionHeaderRe.MatchString(ln) &&
			(quantityHeaderRe.MatchString(ln) || priceHeaderRe.MatchString(ln)) {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 {
		return nil
	}

	var items []domain.LineItem
	for _, ln := range lines[headerIndex+1:] {
		if totalRowRe.MatchString(ln) {
			break
		}
		if item, ok := parseLineItemRow(ln); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseLineItemRow parses one candidate row. The trailing token must be
// numeric (the line total); among the leading tokens the first numeric one
// is the quantity, the next the unit price, and everything else joins the
// description.
func parseLineItemRow(line string) (domain.LineItem, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return domain.LineItem{}, false
	}

	lineTotal := parseAmount(parts[len(parts)-1])
	if lineTotal == nil {
		return domain.LineItem{}, false
	}

	var quantity, unitPrice *float64
	var descTokens []string
	for _, p := range parts[:len(parts)-1] {
		if quantity == nil {
			if q := parseAmount(p); q != nil {
				quantity = q
				continue
			}
		} else if unitPrice == nil {
			if u := parseAmount(p); u != nil {
				unitPrice = u
				continue
			}
		}
		descTokens = append(descTokens, p)
	}

	description := "Item"
	if len(descTokens) > 0 {
		description = strings.Join(descTokens, " ")
	}

	return domain.LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	}, true
}
