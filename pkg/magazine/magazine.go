// Package magazine decodes EAN-2/EAN-5 supplemental digits and infers
// issue dates and magazine-ness from free text.
package magazine

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/calegrey/relister/pkg/types"
)

var (
	twoDigits  = regexp.MustCompile(`^\d{2}$`)
	fiveDigits = regexp.MustCompile(`^\d{5}$`)
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Tokens that mark a generic product lookup result as a periodical.
var magazineTokens = []string{
	"magazine", "issue", "vol.", "volume",
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// ParseAddon decodes an EAN supplemental code. A 2-digit add-on is an
// issue indicator, stored verbatim. A 5-digit add-on encodes a cover
// price in cents in its leading digits; the trailing digits are
// checksum filler and dropped. "12345" decodes to 1.23. Any other
// shape yields an empty inference.
func ParseAddon(addon string) domain.AddonInference {
	var inf domain.AddonInference

	switch {
	case twoDigits.MatchString(addon):
		inf.Issue = addon
	case fiveDigits.MatchString(addon):
		n, err := strconv.Atoi(addon)
		if cents := n / 100; err == nil && cents > 0 {
			price := float64(cents) / 100
			inf.SuggestedPrice = &price
		}
	}

	return inf
}

// ParseMonthYear scans free text for a month name (full or 3-letter
// abbreviation) and a 4-digit year starting 19 or 20. Either may be
// absent; the two searches are independent.
func ParseMonthYear(text string) (month string, year int) {
	lower := strings.ToLower(text)

	for _, m := range months {
		if strings.Contains(lower, m) || strings.Contains(lower, m[:3]) {
			month = strings.ToUpper(m[:1]) + m[1:]
			break
		}
	}

	if match := yearRe.FindString(text); match != "" {
		year, _ = strconv.Atoi(match)
	}

	return month, year
}

// LooksLikeMagazine reports whether free text (title, category, or
// description) carries a periodical-indicative token.
func LooksLikeMagazine(text string) bool {
	lower := strings.ToLower(text)
	for _, tok := range magazineTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// Enrich fills month/year from title then description text, only when
// the add-on produced neither. The inference is updated in place.
func Enrich(inf *domain.AddonInference, title, description string) {
	if inf.Month != "" || inf.Year != 0 {
		return
	}

	month, year := ParseMonthYear(title)
	if month == "" && year == 0 {
		month, year = ParseMonthYear(description)
	}

	inf.Month = month
	inf.Year = year
}
