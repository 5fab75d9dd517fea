package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"invoiceqc/internal/domain"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteReportCSV writes the header plus one row per batch member. The
// report's results must be index-aligned with the batch.
func WriteReportCSV(w io.Writer, batch []domain.Invoice, report *domain.Report) error {
	if len(batch) != len(report.Results) {
		return fmt.Errorf("batch has %d invoices but report has %d results", len(batch), len(report.Results))
	}

	if _, err := w.Write(BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range batch {
		if err := cw.Write(reportRow(&batch[i], &report.Results[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
