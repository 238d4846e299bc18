// Package barcode classifies raw scanned strings into book and magazine
// barcode formats and extracts EAN supplemental digits.
package barcode

import (
	"strings"

	domain "github.com/calegrey/relister/pkg/types"
)

// Normalize classifies a raw scanned string. It never fails: anything
// that cannot be classified comes back as BarcodeUnknown with whatever
// digits survived stripping.
func Normalize(raw string) domain.BarcodeClassification {
	code := strip(raw)

	switch len(code) {
	case 18:
		if kind, ok := ean13Kind(code); ok {
			return domain.BarcodeClassification{
				Kind:  kind,
				Code:  code[:13],
				Addon: code[13:],
			}
		}
	case 15:
		if kind, ok := ean13Kind(code); ok {
			return domain.BarcodeClassification{
				Kind:  kind,
				Code:  code[:13],
				Addon: code[13:],
			}
		}
	case 13:
		if kind, ok := ean13Kind(code); ok {
			return domain.BarcodeClassification{Kind: kind, Code: code}
		}
	case 10:
		return domain.BarcodeClassification{
			Kind: domain.BarcodeISBN10,
			Code: code,
		}
	case 12:
		return domain.BarcodeClassification{
			Kind: domain.BarcodeUPCA,
			Code: code,
		}
	}

	return domain.BarcodeClassification{
		Kind: domain.BarcodeUnknown,
		Code: code,
	}
}

// ean13Kind maps a 13+-digit code's prefix to its EAN-13 kind.
// 978/979 are the Bookland prefixes, 977 is the ISSN (periodical) prefix.
func ean13Kind(code string) (domain.BarcodeKind, bool) {
	switch {
	case strings.HasPrefix(code, "978"), strings.HasPrefix(code, "979"):
		return domain.BarcodeISBN13, true
	case strings.HasPrefix(code, "977"):
		return domain.BarcodeMagazine, true
	}
	return domain.BarcodeUnknown, false
}

// strip removes everything except digits and the ISBN-10 check
// character 'X' (upper-cased).
func strip(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'X' || r == 'x':
			b.WriteByte('X')
		}
	}
	return b.String()
}

// ISBN10To13 converts an ISBN-10 to its ISBN-13 form: "978" plus the
// first nine digits, with a freshly computed EAN-13 check digit.
// Returns "" when the input is not 10 characters long.
func ISBN10To13(isbn10 string) string {
	code := strip(isbn10)
	if len(code) != 10 {
		return ""
	}

	base := "978" + code[:9]
	return base + string(rune('0'+checkDigit(base)))
}

// checkDigit computes the EAN-13 check digit over the first 12 digits
// of base, using alternating 1/3 weights.
func checkDigit(base string) int {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(base[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// ValidISBN13 reports whether a 13-digit code has a correct EAN-13
// check digit.
func ValidISBN13(code string) bool {
	if len(code) != 13 {
		return false
	}
	for i := 0; i < 13; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return int(code[12]-'0') == checkDigit(code)
}
