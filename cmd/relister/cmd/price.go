package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/calegrey/relister/internal/api/client"
)

func priceCmd() *cobra.Command {
	var (
		includeShipping bool
		quantile        float64
	)

	cmd := &cobra.Command{
		Use:   "price <query>",
		Short: "Compute price statistics from live eBay comps",
		Args:  cobra.ExactArgs(1),
		Example: `  relister price "The Pragmatic Programmer"
  relister price "TIME magazine 1999" --shipping
  relister price "vintage camera" --quantile 0.6 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Price(context.Background(), &apiclient.PriceRequest{
				Query:           args[0],
				IncludeShipping: includeShipping,
				Quantile:        quantile,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printPriceDetail(resp)
		},
	}

	cmd.Flags().BoolVar(&includeShipping, "shipping", false, "include shipping cost in comp totals")
	cmd.Flags().Float64Var(&quantile, "quantile", 0, "suggestion quantile between 0 and 1 (default median)")

	return cmd
}
