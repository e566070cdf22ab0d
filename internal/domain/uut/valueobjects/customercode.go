package valueobjects

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// placeholderLetter substitutes for missing or non-letter characters.
const placeholderLetter = 'X'

// CustomerCode is the 2-letter code derived from a customer name at allocation
// time. It is frozen on the record and never re-derived.
type CustomerCode string

// NewCustomerCode validates an already-derived code.
func NewCustomerCode(code string) (CustomerCode, error) {
	if len(code) != 2 {
		return "", ErrInvalidCustomerCode
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCustomerCode
		}
	}
	return CustomerCode(code), nil
}

// DeriveCustomerCode derives a 2-letter code from a raw customer name.
// It is total: any input, including empty or non-letter strings, yields
// exactly two uppercase ASCII letters.
//
// The first letter comes from the first word. The second comes from the last
// word when there is more than one word, otherwise from the second character
// of the single word. Missing or non-letter positions fall back to the
// placeholder letter.
func DeriveCustomerCode(name string) CustomerCode {
	words := strings.Fields(stripDiacritics(name))
	if len(words) == 0 {
		return CustomerCode(string([]rune{placeholderLetter, placeholderLetter}))
	}

	first := []rune(words[0])
	a := first[0]

	var b rune
	if len(words) > 1 {
		b = []rune(words[len(words)-1])[0]
	} else if len(first) > 1 {
		b = first[1]
	} else {
		b = placeholderLetter
	}

	return CustomerCode(string([]rune{sanitizeLetter(a), sanitizeLetter(b)}))
}

func (c CustomerCode) String() string {
	return string(c)
}

// sanitizeLetter uppercases r, substituting the placeholder for anything
// outside A-Z.
func sanitizeLetter(r rune) rune {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return placeholderLetter
	}
	return r
}

// stripDiacritics decomposes accented letters and removes combining marks so
// names like "Édouard" derive from plain ASCII letters.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
