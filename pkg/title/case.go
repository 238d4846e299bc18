package title

import (
	"strings"
)

// Words left lower-case mid-title.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "nor": true,
	"of": true, "on": true, "or": true, "so": true, "the": true,
	"to": true, "up": true, "yet": true,
}

// TitleCase normalizes shouty source titles. Only inputs that are
// entirely upper-case and longer than 3 characters are rewritten:
// folded to lower, then every word capitalized except minor words.
// The first word is always capitalized. Anything else passes through
// untouched, so mixed-case brand names like "TIME Magazine" survive.
func TitleCase(s string) string {
	if len(s) <= 3 || s != strings.ToUpper(s) || s == strings.ToLower(s) {
		return s
	}

	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
