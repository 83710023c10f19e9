package wkt

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CharEncoding selects how characters outside the WKT character set are
// written.
type CharEncoding int

const (
	// EncodingDefault replaces accented Latin characters by their ASCII
	// approximation ("é" → "e") in every element except remarks.
	EncodingDefault CharEncoding = iota
	// EncodingUnicode preserves characters everywhere.
	EncodingUnicode
)

func (e CharEncoding) String() string {
	if e == EncodingUnicode {
		return "unicode"
	}
	return "default"
}

// asciiTransform decomposes characters and strips the combining marks,
// which covers the accented Latin range.
var asciiTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// asciiReplacements handles characters with no combining-mark
// decomposition.
var asciiReplacements = strings.NewReplacer(
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Ł", "L", "ł", "l",
	"ß", "ss",
	"–", "-", "—", "-",
	"’", "'", "‘", "'",
)

// transliterate maps a string to its ASCII approximation. Characters that
// survive both passes are kept as-is rather than dropped.
func transliterate(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	s = asciiReplacements.Replace(s)
	out, _, err := transform.String(asciiTransform, s)
	if err != nil {
		return s
	}
	return out
}
