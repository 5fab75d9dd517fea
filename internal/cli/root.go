// Package cli implements the invoiceqc command line: extract invoices from
// documents, validate batches, or both in one run.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errInvalidInvoices distinguishes "the run worked but some invoices are
// invalid" (exit 1) from hard failures (exit 2).
var errInvalidInvoices = errors.New("one or more invoices failed validation")

var rootCmd = &cobra.Command{
	Use:           "invoiceqc",
	Short:         "Invoice extraction and QC",
	Long:          "invoiceqc extracts structured invoice records from document text and validates them for completeness, consistency, and batch anomalies.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code: 0 when every
// invoice validated cleanly, 1 when any invoice is invalid, 2 on hard
// failures.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errInvalidInvoices) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

func init() {
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fullRunCmd)
}
