package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	validateInput  string
	validateReport string
	validateCSV    string
	validateXLSX   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate invoices from a JSON batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateInput)
		if err != nil {
			return fmt.Errorf("reading %s: %w", validateInput, err)
		}

		svc := newService()
		batch, err := svc.DecodeBatch(data)
		if err != nil {
			return err
		}
		report := svc.ValidateBatch(batch)

		if err := writeJSONFile(validateReport, report); err != nil {
			return err
		}
		if err := writeExports(validateCSV, validateXLSX, batch, &report); err != nil {
			return err
		}
		printSummary(&report)

		if report.Summary.Invalid > 0 {
			return errInvalidInvoices
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateInput, "input", "", "Input JSON file with an invoice array")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Output JSON report path")
	validateCmd.Flags().StringVar(&validateCSV, "csv", "", "Optional CSV report path")
	validateCmd.Flags().StringVar(&validateXLSX, "xlsx", "", "Optional XLSX report path")
	_ = validateCmd.MarkFlagRequired("input")
	_ = validateCmd.MarkFlagRequired("report")
}
