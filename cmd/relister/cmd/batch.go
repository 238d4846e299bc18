package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var (
		condition string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "batch [barcode...]",
		Short: "Assemble drafts for a batch of barcodes",
		Long: "Process a list of barcodes sequentially through the full pipeline.\n" +
			"Barcodes come from the arguments, or from a file (one per line) with\n" +
			"--file. Per-item failures are reported but do not stop the batch.",
		Example: `  relister batch 9780306406157 012345678905
  relister batch --file scans.txt --condition Good`,
		RunE: func(_ *cobra.Command, args []string) error {
			barcodes := args
			if file != "" {
				fromFile, err := readBarcodeFile(file)
				if err != nil {
					return err
				}
				barcodes = append(barcodes, fromFile...)
			}
			if len(barcodes) == 0 {
				return fmt.Errorf("no barcodes given (pass arguments or --file)")
			}

			c := newClient()
			summary, err := c.RunBatch(context.Background(), barcodes, condition, nil)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(summary)
			}
			return printBatchSummary(summary)
		},
	}

	cmd.Flags().StringVar(&condition, "condition", "", "item condition applied to every barcode")
	cmd.Flags().StringVar(&file, "file", "", "file with one barcode per line")

	return cmd
}

func readBarcodeFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("opening barcode file: %w", err)
	}
	defer f.Close()

	var barcodes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		barcodes = append(barcodes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading barcode file: %w", err)
	}
	return barcodes, nil
}
