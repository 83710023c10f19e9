package wkt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// PullMode selects how PullElement searches the remaining children.
type PullMode int

const (
	// First matches only if the first remaining child is an element with
	// one of the requested keywords.
	First PullMode = iota
	// Optional searches all remaining children and reports absence with a
	// nil element instead of an error.
	Optional
	// Mandatory searches all remaining children and fails when no child
	// matches.
	Mandatory
)

// Element is one keyword-tagged node of a parsed WKT tree. Its children are
// the ordered values between the brackets: nested elements, numbers,
// quoted strings and dates. An element without brackets ("NORTH" in
// AXIS["Lat",NORTH]) carries a keyword and no children.
//
// Elements live only for the duration of one parse call: the keyword
// dispatch pulls the children it understands, then Close records whatever
// is left as ignored.
type Element struct {
	keyword   string
	children  []any
	offset    int
	bracketed bool
	text      string // the full input, for error reporting
}

// Keyword returns the element keyword as it appeared in the input.
func (e *Element) Keyword() string {
	return e.keyword
}

// Offset returns the index of the keyword in the parsed text.
func (e *Element) Offset() int {
	return e.offset
}

// IsBracketed reports whether the element had an opening bracket, as
// opposed to a bare keyword child.
func (e *Element) IsBracketed() bool {
	return e.bracketed
}

// ParseTree tokenizes a whole WKT string into its element tree without
// interpreting keywords. Symbols may be nil for the defaults. This is the
// raw surface used by inspection tooling; most callers want Format.Parse.
func ParseTree(text string, symbols *Symbols) (*Element, error) {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	pos := 0
	root, err := parseElement(text, &pos, symbols)
	if err != nil {
		return nil, err
	}
	skipSpace(text, &pos)
	if pos < len(text) {
		return nil, &ParseError{Text: text, Offset: pos, Msg: "unexpected text after complete element"}
	}
	return root, nil
}

func skipSpace(text string, pos *int) {
	for *pos < len(text) {
		r, size := runeAt(text, *pos)
		if !unicode.IsSpace(r) {
			return
		}
		*pos += size
	}
}

func runeAt(text string, pos int) (rune, int) {
	for i, r := range text[pos:] {
		if i == 0 {
			return r, runeLen(r)
		}
	}
	return 0, 0
}

func runeLen(r rune) int {
	return len(string(r))
}

// parseElement reads one element at *pos: a keyword, optionally followed by
// a bracketed, separator-delimited list of children. It advances *pos past
// the element.
func parseElement(text string, pos *int, sym *Symbols) (*Element, error) {
	skipSpace(text, pos)
	start := *pos
	for *pos < len(text) {
		r, size := runeAt(text, *pos)
		if !unicode.IsLetter(r) && r != '_' && !(*pos > start && unicode.IsDigit(r)) {
			break
		}
		*pos += size
	}
	if *pos == start {
		return nil, &ParseError{Text: text, Offset: start, Msg: "missing keyword"}
	}
	el := &Element{keyword: text[start:*pos], offset: start, text: text}

	after := *pos
	skipSpace(text, pos)
	if *pos >= len(text) {
		*pos = after
		return el, nil
	}
	open, size := runeAt(text, *pos)
	closing, ok := sym.matchingClose(open)
	if !ok {
		// Bare keyword child, e.g. an axis direction.
		*pos = after
		return el, nil
	}
	*pos += size
	el.bracketed = true

	skipSpace(text, pos)
	if r, size := runeAt(text, *pos); *pos < len(text) && r == closing {
		*pos += size
		return el, nil
	}
	for {
		child, err := parseValue(text, pos, sym)
		if err != nil {
			return nil, err
		}
		el.children = append(el.children, child)

		skipSpace(text, pos)
		if *pos >= len(text) {
			return nil, &ParseError{Text: text, Offset: *pos,
				Msg: fmt.Sprintf("missing closing bracket %q for %s", closing, el.keyword)}
		}
		r, size := runeAt(text, *pos)
		switch r {
		case closing:
			*pos += size
			return el, nil
		case sym.separator:
			*pos += size
		default:
			return nil, &ParseError{Text: text, Offset: *pos,
				Msg: fmt.Sprintf("expected %q or %q in %s", sym.separator, closing, el.keyword)}
		}
	}
}

// parseValue classifies and reads one child: quoted string, date, number or
// nested element.
func parseValue(text string, pos *int, sym *Symbols) (any, error) {
	skipSpace(text, pos)
	if *pos >= len(text) {
		return nil, &ParseError{Text: text, Offset: *pos, Msg: "unexpected end of text"}
	}
	r, _ := runeAt(text, *pos)
	switch {
	case r == sym.quote:
		return parseQuotedString(text, pos, sym)
	case unicode.IsDigit(r) || r == '+' || r == '-' || r == '.':
		if looksLikeDate(text[*pos:]) {
			return parseDate(text, pos)
		}
		return parseNumber(text, pos)
	case unicode.IsLetter(r) || r == '_':
		return parseElement(text, pos, sym)
	}
	return nil, &ParseError{Text: text, Offset: *pos, Msg: "unparsable text"}
}

// parseQuotedString reads a quoted string, decoding doubled quotes to a
// single quote occurrence.
func parseQuotedString(text string, pos *int, sym *Symbols) (string, error) {
	start := *pos
	*pos += runeLen(sym.quote)
	var sb strings.Builder
	for *pos < len(text) {
		r, size := runeAt(text, *pos)
		if r != sym.quote {
			sb.WriteRune(r)
			*pos += size
			continue
		}
		*pos += size
		if next, nsize := runeAt(text, *pos); *pos < len(text) && next == sym.quote {
			sb.WriteRune(sym.quote)
			*pos += nsize
			continue
		}
		return sb.String(), nil
	}
	return "", &ParseError{Text: text, Offset: start, Msg: "missing closing quote"}
}

func looksLikeDate(s string) bool {
	if len(s) < 8 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s[4] == '-' && s[5] >= '0' && s[5] <= '9' && s[6] >= '0' && s[6] <= '9' && s[7] == '-'
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate reads an ISO 8601 date or date-time literal.
func parseDate(text string, pos *int) (time.Time, error) {
	start := *pos
	for *pos < len(text) {
		c := text[*pos]
		if (c >= '0' && c <= '9') || c == '-' || c == '+' || c == ':' || c == '.' || c == 'T' || c == 'Z' {
			*pos++
			continue
		}
		break
	}
	literal := text[start:*pos]
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, literal); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Text: text, Offset: start,
		Msg: fmt.Sprintf("unparsable date %q", literal)}
}

// parseNumber reads a numeric literal. strconv accepts both "e" and "E"
// exponent markers, so scientific notation is case-insensitive.
func parseNumber(text string, pos *int) (float64, error) {
	start := *pos
	if *pos < len(text) && (text[*pos] == '+' || text[*pos] == '-') {
		*pos++
	}
	digits := func() {
		for *pos < len(text) && text[*pos] >= '0' && text[*pos] <= '9' {
			*pos++
		}
	}
	digits()
	if *pos < len(text) && text[*pos] == '.' {
		*pos++
		digits()
	}
	if *pos < len(text) && (text[*pos] == 'e' || text[*pos] == 'E') {
		mark := *pos
		*pos++
		if *pos < len(text) && (text[*pos] == '+' || text[*pos] == '-') {
			*pos++
		}
		before := *pos
		digits()
		if *pos == before {
			*pos = mark // not an exponent after all
		}
	}
	v, err := strconv.ParseFloat(text[start:*pos], 64)
	if err != nil {
		return 0, &ParseError{Text: text, Offset: start,
			Msg: fmt.Sprintf("unparsable number %q", text[start:*pos]), Cause: err}
	}
	return v, nil
}

// PullElement removes and returns the first child element matching one of
// the given keywords, according to the mode. Keyword matching is
// case-insensitive. Only the Optional mode reports absence with a nil
// element instead of an error.
func (e *Element) PullElement(mode PullMode, keywords ...string) (*Element, error) {
	for i, child := range e.children {
		sub, ok := child.(*Element)
		if !ok {
			if mode == First {
				break
			}
			continue
		}
		if matchKeyword(sub.keyword, keywords) {
			e.removeChild(i)
			return sub, nil
		}
		if mode == First {
			break
		}
	}
	if mode == Optional {
		return nil, nil
	}
	return nil, e.missing(strings.Join(keywords, "|"))
}

func matchKeyword(keyword string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(keyword, c) {
			return true
		}
	}
	return false
}

// PullString removes and returns the first remaining string child.
func (e *Element) PullString(what string) (string, error) {
	for i, child := range e.children {
		if s, ok := child.(string); ok {
			e.removeChild(i)
			return s, nil
		}
	}
	return "", e.missing(what)
}

// PullDouble removes and returns the first remaining numeric child.
func (e *Element) PullDouble(what string) (float64, error) {
	for i, child := range e.children {
		if v, ok := child.(float64); ok {
			e.removeChild(i)
			return v, nil
		}
	}
	return 0, e.missing(what)
}

// PullInteger is PullDouble restricted to whole values.
func (e *Element) PullInteger(what string) (int, error) {
	v, err := e.PullDouble(what)
	if err != nil {
		return 0, err
	}
	n := int(v)
	if float64(n) != v {
		return 0, &ParseError{Text: e.text, Offset: e.offset,
			Msg: fmt.Sprintf("%s in %s must be an integer, got %v", what, e.keyword, v)}
	}
	return n, nil
}

// PullDate removes and returns the first remaining date child.
func (e *Element) PullDate(what string) (time.Time, error) {
	for i, child := range e.children {
		if t, ok := child.(time.Time); ok {
			e.removeChild(i)
			return t, nil
		}
	}
	return time.Time{}, e.missing(what)
}

// PullVoidElement removes and returns the keyword of the first remaining
// bare (unbracketed) child element, e.g. the NORTH in AXIS["Lat",NORTH].
func (e *Element) PullVoidElement(what string) (string, error) {
	for i, child := range e.children {
		if sub, ok := child.(*Element); ok && !sub.bracketed {
			e.removeChild(i)
			return sub.keyword, nil
		}
	}
	return "", e.missing(what)
}

// OptionalString is PullString reporting absence instead of failing.
func (e *Element) OptionalString() (string, bool) {
	s, err := e.PullString("")
	return s, err == nil
}

// OptionalDouble is PullDouble reporting absence instead of failing.
func (e *Element) OptionalDouble() (float64, bool) {
	v, err := e.PullDouble("")
	return v, err == nil
}

// OptionalDate is PullDate reporting absence instead of failing.
func (e *Element) OptionalDate() (time.Time, bool) {
	t, err := e.PullDate("")
	return t, err == nil
}

func (e *Element) removeChild(i int) {
	e.children = append(e.children[:i], e.children[i+1:]...)
}

func (e *Element) missing(what string) error {
	return &ParseError{Text: e.text, Offset: e.offset,
		Msg: fmt.Sprintf("missing %s in %s", what, e.keyword)}
}

// Close records every remaining child element into ignored, keyed by the
// ignored keyword with this element's keyword as context. Unknown elements
// are tolerated per the ISO WKT philosophy of ignoring extensions; the map
// feeds the Warnings of the enclosing parse.
func (e *Element) Close(ignored map[string][]string) {
	for _, child := range e.children {
		if sub, ok := child.(*Element); ok {
			ignored[sub.keyword] = append(ignored[sub.keyword], e.keyword)
		}
	}
	e.children = nil
}

// String renders the element tree one node per line, children indented,
// for inspection tooling.
func (e *Element) String() string {
	var sb strings.Builder
	e.stringIndent(&sb, 0)
	return sb.String()
}

func (e *Element) stringIndent(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	sb.WriteString(prefix)
	sb.WriteString(e.keyword)
	sb.WriteByte('\n')
	for _, child := range e.children {
		switch v := child.(type) {
		case *Element:
			v.stringIndent(sb, indent+1)
		case string:
			fmt.Fprintf(sb, "%s  %q\n", prefix, v)
		case float64:
			fmt.Fprintf(sb, "%s  %s\n", prefix, strconv.FormatFloat(v, 'g', -1, 64))
		case time.Time:
			fmt.Fprintf(sb, "%s  %s\n", prefix, v.Format(time.RFC3339))
		default:
			fmt.Fprintf(sb, "%s  %v\n", prefix, v)
		}
	}
}
