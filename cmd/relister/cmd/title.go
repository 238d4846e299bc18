package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/calegrey/relister/pkg/types"
)

func titleCmd() *cobra.Command {
	var (
		item     domain.ItemFields
		keywords []string
	)

	cmd := &cobra.Command{
		Use:   "title",
		Short: "Build a listing title from item fields",
		Example: `  relister title --title "The Pragmatic Programmer" --author "Hunt" --year 1999
  relister title --magazine --title "TIME" --issue 07 --issue-date "March 1999"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var prefs *domain.TitlePreferences
			if len(keywords) > 0 {
				prefs = &domain.TitlePreferences{TitleKeywords: keywords}
			}

			c := newClient()
			resp, err := c.BuildTitle(context.Background(), item, prefs)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			fmt.Printf("%s (%d chars)\n", resp.Title, resp.Length)
			return nil
		},
	}

	cmd.Flags().StringVar(&item.Title, "title", "", "item title")
	cmd.Flags().StringVar(&item.Author, "author", "", "author name")
	cmd.Flags().StringVar(&item.Publisher, "publisher", "", "publisher name")
	cmd.Flags().StringVar(&item.Year, "year", "", "publication year")
	cmd.Flags().StringVar(&item.Condition, "condition", "", "item condition")
	cmd.Flags().StringVar(&item.Genre, "genre", "", "genre or category")
	cmd.Flags().StringVar(&item.ISBN, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&item.IssueNumber, "issue", "", "magazine issue number")
	cmd.Flags().StringVar(&item.IssueDate, "issue-date", "", "magazine issue date")
	cmd.Flags().StringVar(&item.IssueTitle, "issue-title", "", "magazine issue title")
	cmd.Flags().BoolVar(&item.IsMagazine, "magazine", false, "treat the item as a magazine")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "extra title keyword (repeatable)")

	return cmd
}
