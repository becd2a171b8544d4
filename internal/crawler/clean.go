package crawler

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// arabicBlock is the Unicode Arabic block, U+0600 through U+06FF.
var arabicBlock = rangetable.New(runeRange(0x0600, 0x06FF)...)

// leadingNumberRe matches the book number the site prints before each name.
var leadingNumberRe = regexp.MustCompile(`^\p{Nd}+\.?`)

// runeRange returns every rune from lo to hi inclusive.
func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// IsArabic reports whether r is in the Arabic block.
func IsArabic(r rune) bool {
	return unicode.Is(arabicBlock, r)
}

// CleanBookName turns an index label such as "1Revelationكتاب بدء الوحى"
// into its English name ("Revelation").
//
// It strips the leading number, removes every Arabic run, and trims what is
// left. If nothing remains the original label is returned unchanged, so an
// Arabic-only label keeps its number and text.
func CleanBookName(label string) string {
	rest := leadingNumberRe.ReplaceAllString(label, "")

	english := strings.TrimSpace(strings.Map(func(r rune) rune {
		if IsArabic(r) {
			return -1
		}
		return r
	}, rest))

	if english == "" {
		return label
	}
	return english
}
