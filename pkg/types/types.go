// Package domain defines the core business types for relister.
package domain

import (
	"time"
)

// BarcodeKind represents the classified format of a scanned barcode.
type BarcodeKind string

// Barcode kind constants.
const (
	BarcodeISBN13   BarcodeKind = "isbn13"
	BarcodeISBN10   BarcodeKind = "isbn10"
	BarcodeUPCA     BarcodeKind = "upca"
	BarcodeMagazine BarcodeKind = "ean13_magazine"
	BarcodeUnknown  BarcodeKind = "unknown"
)

// BarcodeClassification is the result of normalizing a raw scanned string.
// Code holds the canonical 10- or 13-digit code (ISBN-10 may end in 'X');
// Addon holds the 2- or 5-digit EAN supplemental code when the raw input
// carried one, empty otherwise.
type BarcodeClassification struct {
	Kind  BarcodeKind `json:"kind"`
	Code  string      `json:"code"`
	Addon string      `json:"addon,omitempty"`
}

// ProductType represents what kind of item a resolved code describes.
type ProductType string

// Product type constants.
const (
	ProductBook     ProductType = "book"
	ProductMagazine ProductType = "magazine"
	ProductGeneric  ProductType = "product"
)

// ProductMetadata is the normalized shape all bibliographic and product
// sources are mapped into. Empty strings and nil slices mean "unknown";
// upstream fields that fail to parse degrade to their zero value rather
// than erroring.
type ProductMetadata struct {
	Type            ProductType `json:"type"`
	Title           string      `json:"title,omitempty"`
	Authors         []string    `json:"authors,omitempty"`
	Publisher       string      `json:"publisher,omitempty"`
	PublicationYear int         `json:"publication_year,omitempty"`
	Description     string      `json:"description,omitempty"`
	Categories      []string    `json:"categories,omitempty"`
	CoverURL        string      `json:"cover_url,omitempty"`
	ISBN13          string      `json:"isbn13,omitempty"` // book-typed results only
	Source          string      `json:"source,omitempty"` // which upstream answered
}

// AddonInference holds what can be decoded from a magazine barcode's
// EAN-2/EAN-5 supplemental digits, plus any month/year recovered from
// free text when the add-on carried neither.
type AddonInference struct {
	Issue          string   `json:"inferred_issue,omitempty"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	Month          string   `json:"inferred_month,omitempty"`
	Year           int      `json:"inferred_year,omitempty"`
}

// PriceComp is a single comparable listing used for price estimation.
type PriceComp struct {
	Title        string   `json:"title,omitempty"`
	Price        float64  `json:"price"`
	ShippingCost *float64 `json:"shipping_cost,omitempty"`
	ItemURL      string   `json:"item_url,omitempty"`
	Condition    string   `json:"condition,omitempty"`
}

// Total returns the listing price, including shipping when requested
// and a shipping cost is known.
func (c *PriceComp) Total(includeShipping bool) float64 {
	if includeShipping && c.ShippingCost != nil {
		return c.Price + *c.ShippingCost
	}
	return c.Price
}

// Distribution holds the summary statistics of a comps set.
// All values are rounded to 2 decimal places.
type Distribution struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P10     float64 `json:"p10"`
	P25     float64 `json:"p25"`
	P50     float64 `json:"p50"`
	P75     float64 `json:"p75"`
	P90     float64 `json:"p90"`
}

// Suggestions holds the pricing tiers derived from the outlier-trimmed
// comps distribution, each rounded up to the nearest .99.
type Suggestions struct {
	FastSale    float64 `json:"fast_sale"`
	Fair        float64 `json:"fair"`
	Competitive float64 `json:"competitive"`
	Stretch     float64 `json:"stretch"`
}

// PriceStatistics is the Price Comps Engine output. When Count is zero
// the distribution is nil and SuggestedPrice carries a fixed fallback.
type PriceStatistics struct {
	Count          int           `json:"count"`
	SuggestedPrice float64       `json:"suggested_price"`
	Distribution   *Distribution `json:"distribution,omitempty"`
	Suggestions    *Suggestions  `json:"suggestions,omitempty"`
}

// ItemFields is the structured input to the title builder. All fields
// are optional; the builder skips whatever is absent.
type ItemFields struct {
	Title           string `json:"title,omitempty"`
	Author          string `json:"author,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	Year            string `json:"year,omitempty"`
	Condition       string `json:"condition,omitempty"`
	Category        string `json:"category,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	Genre           string `json:"genre,omitempty"`
	IssueNumber     string `json:"issue_number,omitempty"`
	IssueDate       string `json:"issue_date,omitempty"`
	IssueTitle      string `json:"issue_title,omitempty"`
	PromotionalHook string `json:"promotional_hook,omitempty"`
	IncludedItems   string `json:"included_items,omitempty"`
	IsMagazine      bool   `json:"is_magazine,omitempty"`
}

// TitlePreferences carries the account-level keyword settings consumed
// by the title builder. Owned by the excluded settings UI; read-only here.
type TitlePreferences struct {
	TitlePrefixes    []string `json:"title_prefixes,omitempty"`
	TitleSuffixes    []string `json:"title_suffixes,omitempty"`
	CustomText       string   `json:"custom_text,omitempty"`
	TitleKeywords    []string `json:"title_keywords,omitempty"`
	ShippingKeywords []string `json:"shipping_keywords,omitempty"`
}

// ListingDraft is the assembled output handed back to the UI/storage
// collaborators: resolved metadata, price statistics, and the generated
// title/description pair. Description may be empty when the generation
// call failed; the draft is still usable.
type ListingDraft struct {
	ID          string           `json:"id"                    db:"id"`
	Barcode     string           `json:"barcode"               db:"barcode"`
	BarcodeKind BarcodeKind      `json:"barcode_kind"          db:"barcode_kind"`
	Metadata    *ProductMetadata `json:"metadata,omitempty"    db:"metadata"`
	Addon       *AddonInference  `json:"addon,omitempty"       db:"addon"`
	Stats       *PriceStatistics `json:"stats,omitempty"       db:"stats"`
	Title       string           `json:"title"                 db:"title"`
	Description string           `json:"description,omitempty" db:"description"`
	Price       float64          `json:"price"                 db:"price"`
	CreatedAt   time.Time        `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"            db:"updated_at"`
}
