package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/calegrey/relister/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage listing drafts",
		Long: "Create, query, and delete listing drafts. Creating a draft runs the\n" +
			"full pipeline for one barcode: classification, metadata resolution,\n" +
			"price comps, title, and description.",
	}

	listingsRoot.AddCommand(
		listingsCreateCmd(),
		listingsListCmd(),
		listingsGetCmd(),
		listingsDeleteCmd(),
	)

	return listingsRoot
}

func listingsCreateCmd() *cobra.Command {
	var condition string

	cmd := &cobra.Command{
		Use:   "create <barcode>",
		Short: "Assemble a draft for a barcode",
		Args:  cobra.ExactArgs(1),
		Example: `  relister listings create 9780306406157
  relister listings create 9780306406157 --condition "Very Good"`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			draft, err := c.CreateListing(context.Background(), args[0], condition, nil)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(draft)
			}
			return printDraftDetail(draft)
		},
	}

	cmd.Flags().StringVar(&condition, "condition", "", "item condition for the description")

	return cmd
}

func listingsListCmd() *cobra.Command {
	params := &apiclient.ListListingsParams{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		Example: `  relister listings list
  relister listings list --kind ean13_magazine --search time
  relister listings list --order-by price --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Drafts) == 0 {
				fmt.Println("No drafts found.")
				return nil
			}
			return printDraftsTable(resp.Drafts)
		},
	}

	cmd.Flags().StringVar(&params.Kind, "kind", "", "filter by barcode kind")
	cmd.Flags().StringVar(&params.Search, "search", "", "case-insensitive title search")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort field (created_at, price, title)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			draft, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(draft)
			}
			return printDraftDetail(draft)
		},
	}
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteListing(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Draft deleted.")
			return nil
		},
	}
}
