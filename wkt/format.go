// Package wkt reads and writes the Well-Known Text representation of
// coordinate reference systems and math transforms. It accepts the common
// dialects (WKT 1, ESRI, GeoTIFF, WKT 2) on input and can write any of
// them on output.
package wkt

import (
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"

	"github.com/georef/wkt/unit"
)

// Format parses and formats WKT text. The zero value is not ready for use;
// call NewFormat.
//
// A Format caches a parser and a formatter between calls and keeps the
// warnings of the last operation, so it is not safe for concurrent use.
// Create one Format per goroutine, or use the package-level functions
// which do so internally.
type Format struct {
	symbols     *Symbols
	colors      *Colors
	convention  Convention
	keywordCase KeywordCase
	encoding    CharEncoding
	indentation int
	authority   string

	parser    *Parser
	formatter *Formatter
	warnings  *Warnings
}

// NewFormat returns a format with the default settings: WKT 2 convention,
// default symbols, two-space indentation, no colors.
func NewFormat() *Format {
	return &Format{
		symbols:     DefaultSymbols(),
		convention:  WKT2,
		indentation: defaultIndentation,
	}
}

// Symbols returns the symbols in use.
func (f *Format) Symbols() *Symbols {
	return f.symbols
}

// SetSymbols replaces the symbols used for both parsing and formatting.
// A nil value restores the defaults.
func (f *Format) SetSymbols(s *Symbols) {
	if s == nil {
		s = DefaultSymbols()
	}
	f.symbols = s
	f.invalidate()
}

// Colors returns the color set applied to formatted text, or nil.
func (f *Format) Colors() *Colors {
	return f.colors
}

// SetColors enables syntax coloring of formatted output. A nil value
// disables it.
func (f *Format) SetColors(c *Colors) {
	f.colors = c
	f.invalidate()
}

// Convention returns the convention written by Format and assumed, where
// the text is ambiguous, by Parse.
func (f *Format) Convention() Convention {
	return f.convention
}

// SetConvention selects the variant of WKT to write.
func (f *Format) SetConvention(c Convention) {
	f.convention = c
	f.invalidate()
}

// KeywordCase returns the keyword case policy.
func (f *Format) KeywordCase() KeywordCase {
	return f.keywordCase
}

// SetKeywordCase selects upper-case or camel-case keywords in output.
func (f *Format) SetKeywordCase(kc KeywordCase) {
	f.keywordCase = kc
	f.invalidate()
}

// Encoding returns the character encoding policy for formatted strings.
// With EncodingDefault the effective policy also depends on the
// convention: the Internal convention preserves Unicode.
func (f *Format) Encoding() CharEncoding {
	return f.encoding
}

// SetEncoding selects whether accented characters are transliterated to
// ASCII or preserved.
func (f *Format) SetEncoding(e CharEncoding) {
	f.encoding = e
	f.invalidate()
}

// Indentation returns the number of spaces per nesting level, or
// SingleLine.
func (f *Format) Indentation() int {
	return f.indentation
}

// SetIndentation sets the number of spaces per nesting level. SingleLine
// writes the whole text on one line.
func (f *Format) SetIndentation(n int) {
	if n < 0 {
		n = SingleLine
	}
	f.indentation = n
	f.invalidate()
}

// Authority returns the name of the authority whose element names are
// preferred, either set explicitly or implied by the convention.
func (f *Format) Authority() string {
	if f.authority != "" {
		return f.authority
	}
	return f.convention.Authority()
}

// SetAuthority overrides the preferred authority. An empty name restores
// the one implied by the convention.
func (f *Format) SetAuthority(name string) {
	f.authority = name
	f.invalidate()
}

// invalidate drops the cached parser and formatter so that the next
// operation rebuilds them with the current settings.
func (f *Format) invalidate() {
	f.parser = nil
	f.formatter = nil
}

func (f *Format) effectiveEncoding() CharEncoding {
	if f.encoding == EncodingDefault && f.convention == Internal {
		return EncodingUnicode
	}
	return f.encoding
}

// Parse reads one object from the whole of text. Text remaining after the
// object, other than white space, is an error. Non-fatal problems are
// recorded and available from Warnings until the next operation.
func (f *Format) Parse(text string) (any, error) {
	f.warnings = nil
	if f.parser == nil {
		f.parser = NewParser(f.symbols, f.convention)
	}
	obj, end, err := f.parser.Parse(text, 0)
	if err != nil {
		return nil, err
	}
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsSpace(r) {
			break
		}
		end += size
	}
	if end < len(text) {
		return nil, &ParseError{Text: text, Offset: end, Msg: "unexpected text after the WKT object"}
	}
	f.warnings = f.parser.takeWarnings(obj)
	return obj, nil
}

// ensureFormatter rebuilds the cached formatter if a setting changed.
func (f *Format) ensureFormatter() *Formatter {
	if f.formatter == nil {
		f.formatter = &Formatter{}
		f.formatter.Configure(f.convention, f.symbols, f.colors, f.indentation)
		f.formatter.SetKeywordCase(f.keywordCase)
		f.formatter.SetEncoding(f.effectiveEncoding())
		if f.authority != "" {
			f.formatter.SetAuthority(f.authority)
		}
	}
	return f.formatter
}

// Format writes the WKT representation of obj to w. It accepts any
// Formattable together with the plain value types that can stand alone in
// WKT text: strings, numbers and dates.
//
// Format is lenient: an object with no standard representation under the
// current convention is still written, and the problem is reported through
// Warnings. Use Marshal for the strict behavior.
func (f *Format) Format(obj any, w io.Writer) error {
	f.warnings = nil
	fmtr := f.ensureFormatter()
	fmtr.Reset()
	switch v := obj.(type) {
	case Formattable:
		fmtr.Append(v)
	case unit.Unit:
		fmtr.AppendUnit(v)
	case string:
		fmtr.AppendString(v, ElementName)
	case float64:
		fmtr.AppendNumber(v)
	case float32:
		fmtr.AppendNumber(float64(v))
	case int:
		fmtr.AppendInt(int64(v))
	case int64:
		fmtr.AppendInt(v)
	case time.Time:
		fmtr.AppendDate(v)
	default:
		return &UnsupportedTypeError{Value: obj}
	}
	if invalid, _ := fmtr.InvalidElement(); invalid != "" {
		f.warnings = &Warnings{root: obj, messages: fmtr.messages}
	}
	_, err := io.WriteString(w, fmtr.String())
	return err
}

// Warnings returns the non-fatal problems of the last Parse or Format
// call, or nil if there were none. The returned value stays valid after
// further calls on this Format.
func (f *Format) Warnings() *Warnings {
	if f.warnings.IsEmpty() {
		return nil
	}
	f.warnings.publish()
	return f.warnings
}

// String returns the compact single-line WKT 2 representation of obj. It
// is lenient: objects with no standard representation still produce text.
func String(obj Formattable) string {
	return StringWith(obj, WKT2)
}

// StringWith is String under the given convention.
func StringWith(obj Formattable, convention Convention) string {
	f := NewFormatter(convention, nil, SingleLine)
	f.Append(obj)
	return f.String()
}

// Marshal returns the indented WKT 2 representation of obj. Unlike String
// it is strict: an object with no standard representation yields an
// UnformattableError and no text.
func Marshal(obj Formattable) ([]byte, error) {
	return MarshalWith(obj, WKT2, defaultIndentation)
}

// MarshalWith is Marshal under the given convention and indentation.
func MarshalWith(obj Formattable, convention Convention, indentation int) ([]byte, error) {
	f := NewFormatter(convention, nil, indentation)
	f.Append(obj)
	if keyword, cause := f.InvalidElement(); keyword != "" {
		return nil, &UnformattableError{Element: keyword, Cause: cause}
	}
	return []byte(f.String()), nil
}

var log = commonlog.GetLogger("wkt")

// FromWKT parses text with the default settings and logs any warnings.
// It is the convenience entry point for callers that do not need to
// inspect warnings themselves.
func FromWKT(text string) (any, error) {
	f := NewFormat()
	obj, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	if w := f.Warnings(); w != nil {
		for _, line := range strings.Split(w.String(), "\n") {
			log.Warning(line)
		}
	}
	return obj, nil
}
