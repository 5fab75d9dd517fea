package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	extractInputDir string
	extractOutput   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract invoices from documents to JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		invoices, err := svc.ExtractDir(extractInputDir)
		if err != nil {
			return err
		}
		if err := writeJSONFile(extractOutput, invoices); err != nil {
			return err
		}
		fmt.Printf("Extracted %d invoices to %s\n", len(invoices), extractOutput)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractInputDir, "input-dir", "", "Directory containing invoice documents")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "Path to output JSON file")
	_ = extractCmd.MarkFlagRequired("input-dir")
	_ = extractCmd.MarkFlagRequired("output")
}
