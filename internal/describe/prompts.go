package describe

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	domain "github.com/calegrey/relister/pkg/types"
)

// descriptionTmpl is the listing description prompt template. Every
// structured field is rendered literally; absent fields appear as the
// word "Unknown" so the model never has to guess what was omitted.
const descriptionTmpl = `Write a concise eBay listing description for this item.
Use only the facts below. Do not invent details for fields marked Unknown.
Plain text, no markdown, at most three short paragraphs.

Item type: {{.Type}}
Title: {{.Title}}
Author(s): {{.Authors}}
Publisher: {{.Publisher}}
Publication year: {{.Year}}
Categories: {{.Categories}}
Issue number: {{.Issue}}
Issue date: {{.IssueDate}}
Condition: {{.Condition}}
Asking price: {{.Price}}`

// promptFields is the flattened, stringly-typed view rendered into the
// template.
type promptFields struct {
	Type       string
	Title      string
	Authors    string
	Publisher  string
	Year       string
	Categories string
	Issue      string
	IssueDate  string
	Condition  string
	Price      string
}

var descriptionTemplate = template.Must(
	template.New("description").Parse(descriptionTmpl),
)

const unknown = "Unknown"

// BuildPrompt renders the deterministic description prompt for a
// resolved item. Nil metadata and nil inference are allowed; every
// missing field renders as "Unknown".
func BuildPrompt(
	meta *domain.ProductMetadata,
	addon *domain.AddonInference,
	condition string,
	price float64,
) (string, error) {
	f := promptFields{
		Type:       unknown,
		Title:      unknown,
		Authors:    unknown,
		Publisher:  unknown,
		Year:       unknown,
		Categories: unknown,
		Issue:      unknown,
		IssueDate:  unknown,
		Condition:  unknown,
		Price:      unknown,
	}

	if meta != nil {
		f.Type = orUnknown(string(meta.Type))
		f.Title = orUnknown(meta.Title)
		f.Authors = orUnknown(strings.Join(meta.Authors, ", "))
		f.Publisher = orUnknown(meta.Publisher)
		f.Categories = orUnknown(strings.Join(meta.Categories, ", "))
		if meta.PublicationYear > 0 {
			f.Year = strconv.Itoa(meta.PublicationYear)
		}
	}

	if addon != nil {
		f.Issue = orUnknown(addon.Issue)
		if addon.Month != "" || addon.Year > 0 {
			f.IssueDate = strings.TrimSpace(
				fmt.Sprintf("%s %s", addon.Month, yearString(addon.Year)),
			)
		}
	}

	f.Condition = orUnknown(condition)
	if price > 0 {
		f.Price = fmt.Sprintf("%.2f", price)
	}

	var buf bytes.Buffer
	if err := descriptionTemplate.Execute(&buf, f); err != nil {
		return "", fmt.Errorf("rendering description prompt: %w", err)
	}
	return buf.String(), nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknown
	}
	return s
}

func yearString(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}
