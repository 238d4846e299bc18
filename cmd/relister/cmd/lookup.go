package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <barcode>",
		Short: "Classify a barcode and resolve product metadata",
		Args:  cobra.ExactArgs(1),
		Example: `  relister lookup 9780306406157
  relister lookup "978-0-306-40615-7"
  relister lookup 977123456700307 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Lookup(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printLookupDetail(resp)
		},
	}
}
