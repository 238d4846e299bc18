package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/calegrey/relister/internal/api/client"
	"github.com/calegrey/relister/internal/notify"
	domain "github.com/calegrey/relister/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printLookupDetail(r *apiclient.LookupResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Kind:\t%s\n", r.Classification.Kind)
	tw.writef("Code:\t%s\n", r.Classification.Code)
	if r.Classification.Addon != "" {
		tw.writef("Add-on:\t%s\n", r.Classification.Addon)
	}
	if m := r.Metadata; m != nil {
		tw.writef("Title:\t%s\n", m.Title)
		if len(m.Authors) > 0 {
			tw.writef("Authors:\t%s\n", strings.Join(m.Authors, ", "))
		}
		if m.Publisher != "" {
			tw.writef("Publisher:\t%s\n", m.Publisher)
		}
		if m.PublicationYear > 0 {
			tw.writef("Year:\t%d\n", m.PublicationYear)
		}
		tw.writef("Source:\t%s\n", m.Source)
	} else {
		tw.writef("Metadata:\tnot found\n")
	}
	if a := r.Addon; a != nil {
		if a.Issue != "" {
			tw.writef("Issue:\t%s\n", a.Issue)
		}
		if a.SuggestedPrice != nil {
			tw.writef("Cover Price:\t$%.2f\n", *a.SuggestedPrice)
		}
		if a.Month != "" {
			tw.writef("Issue Month:\t%s\n", a.Month)
		}
		if a.Year > 0 {
			tw.writef("Issue Year:\t%d\n", a.Year)
		}
	}
	return tw.finish()
}

func printPriceDetail(r *apiclient.PriceResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Query:\t%s\n", r.Query)
	tw.writef("Comps:\t%d (of %d seen, %d pages)\n", r.Stats.Count, r.TotalSeen, r.PagesUsed)
	tw.writef("Suggested:\t$%.2f\n", r.Stats.SuggestedPrice)
	if d := r.Stats.Distribution; d != nil {
		tw.writef("Range:\t$%.2f - $%.2f\n", d.Min, d.Max)
		tw.writef("Median:\t$%.2f\n", d.Median)
		tw.writef("Average:\t$%.2f\n", d.Average)
		tw.writef("P25/P75:\t$%.2f / $%.2f\n", d.P25, d.P75)
	}
	if s := r.Stats.Suggestions; s != nil {
		tw.writef("Fast Sale:\t$%.2f\n", s.FastSale)
		tw.writef("Fair:\t$%.2f\n", s.Fair)
		tw.writef("Competitive:\t$%.2f\n", s.Competitive)
		tw.writef("Stretch:\t$%.2f\n", s.Stretch)
	}
	return tw.finish()
}

func printDraftsTable(drafts []domain.ListingDraft) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tKIND\tCREATED\n")
	for i := range drafts {
		tw.writef("%s\t%s\t$%.2f\t%s\t%s\n",
			drafts[i].ID,
			truncate(drafts[i].Title, 50),
			drafts[i].Price,
			drafts[i].BarcodeKind,
			drafts[i].CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printDraftDetail(d *domain.ListingDraft) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Barcode:\t%s (%s)\n", d.Barcode, d.BarcodeKind)
	tw.writef("Title:\t%s\n", d.Title)
	tw.writef("Price:\t$%.2f\n", d.Price)
	if d.Stats != nil {
		tw.writef("Comps:\t%d\n", d.Stats.Count)
	}
	if d.Metadata != nil && d.Metadata.Source != "" {
		tw.writef("Source:\t%s\n", d.Metadata.Source)
	}
	tw.writef("Created:\t%s\n", d.CreatedAt.Format("2006-01-02 15:04:05"))
	if d.Description != "" {
		tw.writef("\n%s\n", d.Description)
	}
	return tw.finish()
}

func printBatchSummary(s *notify.BatchSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("BARCODE\tDRAFT\tTITLE\tPRICE\tERROR\n")
	for i := range s.Items {
		item := &s.Items[i]
		price := "-"
		if item.Price > 0 {
			price = fmt.Sprintf("$%.2f", item.Price)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			item.Barcode,
			item.DraftID,
			truncate(item.Title, 40),
			price,
			truncate(item.Error, 40),
		)
	}
	tw.writef("\nProcessed %d in %s: %d succeeded, %d failed.\n",
		s.Total, s.Duration.Round(time.Millisecond), s.Succeeded, s.Failed)
	return tw.finish()
}

func printQuotaDetail(q *apiclient.QuotaStatus) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
	tw.writef("Used:\t%d\n", q.DailyUsed)
	tw.writef("Remaining:\t%d\n", q.Remaining)
	tw.writef("Resets:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05"))
	if q.Live != nil {
		tw.writef("eBay Limit:\t%d\n", q.Live.Limit)
		tw.writef("eBay Remaining:\t%d\n", q.Live.Remaining)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
