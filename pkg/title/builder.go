// Package title assembles eBay-compliant listing titles from structured
// item fields, enforcing the 80-character marketplace cap.
package title

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/calegrey/relister/pkg/magazine"
	domain "github.com/calegrey/relister/pkg/types"
)

// MaxLength is the eBay hard cap on listing titles.
const MaxLength = 80

// Placeholders returned when every part is empty.
const (
	placeholderBook     = "Untitled"
	placeholderMagazine = "Magazine"
)

var magazineWord = regexp.MustCompile(`(?i)\bmagazine\b`)

// Build assembles a listing title from item fields and optional user
// preferences. The result is always non-empty and at most MaxLength
// characters; it is recomputed from scratch on every call.
func Build(item domain.ItemFields, prefs *domain.TitlePreferences) string {
	var parts []string
	if prefs != nil {
		parts = append(parts, prefs.TitlePrefixes...)
	}

	placeholder := placeholderBook
	if item.IsMagazine {
		placeholder = placeholderMagazine
		parts = append(parts, magazineParts(item)...)
	} else {
		parts = append(parts, bookParts(item)...)
	}

	if prefs != nil {
		parts = append(parts, prefs.TitleSuffixes...)
		parts = append(parts, prefs.CustomText)
	}

	text := joinParts(parts)
	text = dedupeConsecutive(text)

	if prefs != nil {
		text = appendKeywords(text, prefs.TitleKeywords)
	}

	text = truncateAtWord(text, MaxLength)

	if text == "" {
		return placeholder
	}
	return text
}

// magazineParts orders magazine fields: publication + "Magazine",
// distinct issue title, issue number, month/year, hook, included items.
func magazineParts(item domain.ItemFields) []string {
	pub := publicationName(item.Title)

	parts := []string{pub}

	if item.IssueTitle != "" && !strings.EqualFold(item.IssueTitle, item.Title) &&
		!strings.EqualFold(item.IssueTitle, pub) {
		parts = append(parts, item.IssueTitle)
	}

	if item.IssueNumber != "" {
		parts = append(parts, "Issue "+item.IssueNumber)
	}

	parts = append(parts,
		formatIssueDate(item.IssueDate),
		item.PromotionalHook,
		item.IncludedItems,
	)
	return parts
}

func bookParts(item domain.ItemFields) []string {
	parts := []string{item.Title}
	if item.Author != "" {
		parts = append(parts, "by "+item.Author)
	}
	parts = append(parts, item.PromotionalHook)
	return parts
}

// publicationName strips any existing "magazine" word from the source
// title and appends the literal suffix once, so "TIME Magazine" and
// "TIME" both come out as "TIME Magazine".
func publicationName(src string) string {
	name := strings.TrimSpace(magazineWord.ReplaceAllString(src, ""))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	return name + " Magazine"
}

// formatIssueDate renders "January 2024", "January", "2024", or ""
// from free-text issue dates, expanding month abbreviations.
func formatIssueDate(raw string) string {
	if raw == "" {
		return ""
	}

	month, year := magazine.ParseMonthYear(raw)
	switch {
	case month != "" && year != 0:
		return month + " " + strconv.Itoa(year)
	case year != 0:
		return strconv.Itoa(year)
	case month != "":
		return month
	}
	return strings.TrimSpace(raw)
}

func joinParts(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// dedupeConsecutive removes immediately repeated words, case-insensitive.
// Only consecutive repeats are dropped; a word may legitimately reappear
// later in the title.
func dedupeConsecutive(text string) string {
	words := strings.Fields(text)
	kept := words[:0]
	prev := ""
	for _, w := range words {
		if strings.EqualFold(w, prev) {
			continue
		}
		kept = append(kept, w)
		prev = w
	}
	return strings.Join(kept, " ")
}

// appendKeywords adds preference keywords one at a time, keeping each
// only if the title stays within MaxLength; the first rejection stops
// the loop.
func appendKeywords(text string, keywords []string) string {
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}

		candidate := kw
		if text != "" {
			candidate = text + " " + kw
		}
		if len(candidate) > MaxLength {
			break
		}
		text = candidate
	}
	return text
}

// truncateAtWord accumulates words while the running length stays
// within max, stopping at the first word that would exceed it.
func truncateAtWord(text string, max int) string {
	if len(text) <= max {
		return text
	}

	words := strings.Fields(text)
	var b strings.Builder
	for _, w := range words {
		need := len(w)
		if b.Len() > 0 {
			need++
		}
		if b.Len()+need > max {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
