package wkt

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/georef/wkt/unit"
)

// SingleLine as an indentation disables new lines and indentation: the
// whole text is written on a single line.
const SingleLine = -1

// defaultIndentation is the number of spaces per nesting level when
// pretty-printing.
const defaultIndentation = 2

// Formatter builds the WKT representation of objects. The element keyword
// is written only after the element body, because Formattable
// implementations return the keyword from FormatTo; the formatter keeps a
// mark per open element and splices the keyword in afterwards.
//
// A Formatter accumulates state and is not safe for concurrent use; create
// one instance per goroutine.
type Formatter struct {
	symbols     *Symbols
	colors      *Colors
	convention  Convention
	authority   string
	keywordCase KeywordCase
	encoding    CharEncoding
	indentation int

	buf      []byte
	depth    int
	children []int

	invalid      string
	invalidCause error
	messages     []Message
}

// NewFormatter returns a formatter for the given convention, symbols and
// indentation. A nil symbols selects the defaults; use SingleLine as the
// indentation to disable new lines.
func NewFormatter(convention Convention, symbols *Symbols, indentation int) *Formatter {
	f := &Formatter{}
	f.Configure(convention, symbols, nil, indentation)
	return f
}

// Configure replaces the formatter settings and resets any accumulated
// text. It is called by Format each time a setting changed since the last
// formatting operation.
func (f *Formatter) Configure(convention Convention, symbols *Symbols, colors *Colors, indentation int) {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	f.convention = convention
	f.symbols = symbols
	f.colors = colors
	f.indentation = indentation
	f.authority = convention.Authority()
	f.Reset()
}

// SetKeywordCase selects upper or camel case keywords.
func (f *Formatter) SetKeywordCase(kc KeywordCase) {
	f.keywordCase = kc
}

// SetEncoding selects the character encoding policy for quoted strings.
func (f *Formatter) SetEncoding(e CharEncoding) {
	f.encoding = e
}

// SetAuthority overrides the authority whose element names are preferred.
// An empty name restores the authority implied by the convention.
func (f *Formatter) SetAuthority(name string) {
	if name == "" {
		name = f.convention.Authority()
	}
	f.authority = name
}

// Reset clears the accumulated text and the invalid-object state while
// keeping the configuration.
func (f *Formatter) Reset() {
	f.buf = f.buf[:0]
	f.depth = 0
	f.children = f.children[:0]
	f.invalid = ""
	f.invalidCause = nil
	f.messages = nil
}

// Convention returns the convention this formatter writes.
func (f *Formatter) Convention() Convention {
	return f.convention
}

// Authority returns the name of the authority whose element names are
// preferred in output.
func (f *Formatter) Authority() string {
	return f.authority
}

// Symbols returns the symbols in use.
func (f *Formatter) Symbols() *Symbols {
	return f.symbols
}

// Colors returns the color set in use, or nil when coloring is disabled.
func (f *Formatter) Colors() *Colors {
	return f.colors
}

// SetInvalidWKT declares that the object currently being formatted has no
// standard representation under the formatter's convention. Formatting
// continues, so a lenient caller still gets text, but strict callers turn
// the flag into an error. Only the first report is kept as the error cause.
func (f *Formatter) SetInvalidWKT(keyword string, cause error) {
	if f.invalid == "" {
		f.invalid = keyword
		f.invalidCause = cause
	}
	msg := "the WKT under construction is non standard"
	if keyword != "" {
		msg += " in " + keyword
	}
	f.messages = append(f.messages, Message{Text: msg, Cause: cause})
}

// InvalidElement returns the keyword of the first element reported through
// SetInvalidWKT, or an empty string when the text so far is standard.
func (f *Formatter) InvalidElement() (string, error) {
	return f.invalid, f.invalidCause
}

// String returns the text accumulated so far.
func (f *Formatter) String() string {
	return string(f.buf)
}

func (f *Formatter) upperKeywords() bool {
	switch f.keywordCase {
	case UpperCase:
		return true
	case CamelCase:
		return false
	}
	return f.convention.majorVersion() == 1
}

// appendSeparator writes the separator before the next value or element.
// Elements go on their own line when indentation is enabled; plain values
// stay on the line of their parent keyword.
func (f *Formatter) appendSeparator(element bool) {
	if len(f.children) == 0 {
		return
	}
	last := len(f.children) - 1
	count := f.children[last]
	f.children[last] = count + 1
	if count > 0 {
		f.buf = append(f.buf, string(f.symbols.separator)...)
	}
	if element && f.indentation >= 0 {
		f.buf = append(f.buf, '\n')
		for i := 0; i < f.depth*f.indentation; i++ {
			f.buf = append(f.buf, ' ')
		}
	} else if count > 0 && f.indentation >= 0 {
		f.buf = append(f.buf, ' ')
	}
}

// Append formats a complete element for the given object. The body is
// written first by FormatTo, then the keyword it returned is spliced in
// front of the opening bracket. A nil object appends nothing.
func (f *Formatter) Append(obj Formattable) {
	if obj == nil {
		return
	}
	f.appendSeparator(true)
	mark := len(f.buf)
	f.children = append(f.children, 0)
	f.depth++
	keyword := obj.FormatTo(f)
	f.depth--
	f.children = f.children[:len(f.children)-1]

	bracket := f.symbols.CanonicalBracket()
	head := f.colors.apply(ElementKeyword, spell(keyword, f.upperKeywords())) + string(bracket.Open)
	body := append([]byte(nil), f.buf[mark:]...)
	f.buf = append(f.buf[:mark], head...)
	f.buf = append(f.buf, body...)
	f.buf = append(f.buf, string(bracket.Close)...)
}

// AppendString writes a quoted string. Quote characters inside the text
// are doubled. Unless the encoding keeps Unicode, accented characters are
// transliterated to ASCII in every kind except remarks.
func (f *Formatter) AppendString(text string, kind ElementKind) {
	f.appendSeparator(false)
	if f.encoding == EncodingDefault && kind != ElementRemarks {
		text = transliterate(text)
	}
	q := string(f.symbols.quote)
	quoted := q + strings.ReplaceAll(text, q, q+q) + q
	f.buf = append(f.buf, f.colors.apply(kind, quoted)...)
}

// AppendNumber writes a floating point value.
func (f *Formatter) AppendNumber(v float64) {
	f.appendSeparator(false)
	f.buf = append(f.buf, f.colors.apply(ElementNumber, formatNumber(v))...)
}

// AppendInt writes a whole value such as an identifier code or an axis
// order.
func (f *Formatter) AppendInt(v int64) {
	f.appendSeparator(false)
	f.buf = append(f.buf, f.colors.apply(ElementInteger, strconv.FormatInt(v, 10))...)
}

// AppendDate writes a calendar date, with the time of day only when it is
// not midnight.
func (f *Formatter) AppendDate(t time.Time) {
	f.appendSeparator(false)
	layout := "2006-01-02"
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		layout = time.RFC3339
	}
	f.buf = append(f.buf, f.colors.apply(ElementNumber, t.Format(layout))...)
}

// AppendVoid writes a bare keyword value such as an axis direction or a
// coordinate system type. The text is written as given.
func (f *Formatter) AppendVoid(text string) {
	f.appendSeparator(false)
	f.buf = append(f.buf, f.colors.apply(ElementKeyword, text)...)
}

// unitElement adapts a unit of measure to the Formattable contract so it
// can be written through the usual element mechanics.
type unitElement struct {
	u unit.Unit
}

func (e unitElement) FormatTo(f *Formatter) string {
	f.AppendString(e.u.Symbol, ElementUnit)
	f.AppendNumber(e.u.Factor)
	if f.convention.majorVersion() == 1 {
		return "UNIT"
	}
	switch e.u.Kind {
	case unit.Angular:
		return "ANGLEUNIT"
	case unit.Linear:
		return "LENGTHUNIT"
	case unit.Temporal:
		return "TIMEUNIT"
	}
	return "SCALEUNIT"
}

// AppendUnit writes a unit element. WKT 2 spells the keyword by the kind
// of the unit, ANGLEUNIT for example, while the version 1 dialects always
// use UNIT. Unit elements are written without an identifier, and the zero
// unit appends nothing.
func (f *Formatter) AppendUnit(u unit.Unit) {
	if u.IsZero() {
		return
	}
	f.Append(unitElement{u})
}

// formatNumber writes the shortest representation that parses back to the
// same value, preferring plain decimal notation over the exponent form for
// the magnitudes that occur in coordinate system definitions.
func formatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if exp, err := strconv.Atoi(s[i+1:]); err == nil && exp > -12 && exp < 16 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return s
}
