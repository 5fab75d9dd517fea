package cli

import (
	"github.com/spf13/cobra"
)

var (
	fullRunInputDir string
	fullRunReport   string
	fullRunCSV      string
	fullRunXLSX     string
)

var fullRunCmd = &cobra.Command{
	Use:   "full-run",
	Short: "Extract from documents and then validate",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		invoices, report, err := svc.FullRun(fullRunInputDir)
		if err != nil {
			return err
		}

		if err := writeJSONFile(fullRunReport, report); err != nil {
			return err
		}
		if err := writeExports(fullRunCSV, fullRunXLSX, invoices, &report); err != nil {
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
	fullRunCmd.Flags().StringVar(&fullRunInputDir, "input-dir", "", "Directory containing invoice documents")
	fullRunCmd.Flags().StringVar(&fullRunReport, "report", "", "Output JSON report path")
	fullRunCmd.Flags().StringVar(&fullRunCSV, "csv", "", "Optional CSV report path")
	fullRunCmd.Flags().StringVar(&fullRunXLSX, "xlsx", "", "Optional XLSX report path")
	_ = fullRunCmd.MarkFlagRequired("input-dir")
	_ = fullRunCmd.MarkFlagRequired("report")
}
