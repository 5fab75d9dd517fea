package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"invoiceqc/internal/domain"
)

const resultsSheet = "Results"

// WriteReportXLSX writes a workbook with a summary block and one results
// row per batch member.
func WriteReportXLSX(w io.Writer, batch []domain.Invoice, report *domain.Report) error {
	if len(batch) != len(report.Results) {
		return fmt.Errorf("batch has %d invoices but report has %d results", len(batch), len(report.Results))
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return err
	}

	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summaryRows := [][]any{
		{"Total", report.Summary.Total},
		{"Valid", report.Summary.Valid},
		{"Invalid", report.Summary.Invalid},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return err
	}
	for i := range batch {
		row := reportRow(&batch[i], &report.Results[i])
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &cells); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
