package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"invoiceqc/internal/domain"
	"invoiceqc/internal/export"
	"invoiceqc/internal/extractor"
	"invoiceqc/internal/loader"
	"invoiceqc/internal/service"
	"invoiceqc/internal/validator"
)

func newService() *service.QCService {
	return service.NewQCService(
		loader.NewDirLoader(),
		extractor.NewEngine(),
		validator.NewDefaultEngine(),
	)
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// printSummary prints the human-readable run summary plus a tally of the
// most frequent error codes.
func printSummary(report *domain.Report) {
	fmt.Println()
	fmt.Println("Validation Summary")
	fmt.Println("-------------------")
	fmt.Printf("Total invoices   : %d\n", report.Summary.Total)
	fmt.Printf("Valid invoices   : %d\n", report.Summary.Valid)
	fmt.Printf("Invalid invoices : %d\n", report.Summary.Invalid)

	counts := make(map[string]int)
	for _, r := range report.Results {
		for _, code := range r.Errors {
			counts[code]++
		}
	}
	if len(counts) == 0 {
		return
	}

	type tally struct {
		code  string
		count int
	}
	tallies := make([]tally, 0, len(counts))
	for code, count := range counts {
		tallies = append(tallies, tally{code, count})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		return tallies[i].code < tallies[j].code
	})
	if len(tallies) > 10 {
		tallies = tallies[:10]
	}

	fmt.Println("\nTop error types:")
	for _, t := range tallies {
		fmt.Printf("  %s: %d\n", t.code, t.count)
	}
}

// writeExports writes the optional CSV/XLSX renderings of the report.
func writeExports(csvPath, xlsxPath string, batch []domain.Invoice, report *domain.Report) error {
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", csvPath, err)
		}
		err = export.WriteReportCSV(f, batch, report)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", csvPath, err)
		}
	}
	if xlsxPath != "" {
		f, err := os.Create(xlsxPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", xlsxPath, err)
		}
		err = export.WriteReportXLSX(f, batch, report)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", xlsxPath, err)
		}
	}
	return nil
}
