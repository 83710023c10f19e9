package wkt

import "fmt"

// Bracket is a matched pair of opening and closing characters.
type Bracket struct {
	Open  rune
	Close rune
}

// Symbols describes the characters used when reading and writing WKT:
// the accepted bracket pairs, the quote character and the value separator.
//
// All bracket pairs are accepted while parsing; only the first pair is
// written while formatting. Symbols values are immutable once constructed
// and may be shared between parsers and formatters.
type Symbols struct {
	brackets  []Bracket
	quote     rune
	separator rune
}

// SymbolsOption configures a Symbols value under construction.
type SymbolsOption func(*Symbols)

// WithBrackets replaces the accepted bracket pairs. The first pair is the
// canonical one used when formatting.
func WithBrackets(pairs ...Bracket) SymbolsOption {
	return func(s *Symbols) {
		s.brackets = append([]Bracket(nil), pairs...)
	}
}

// WithQuote replaces the quote character.
func WithQuote(q rune) SymbolsOption {
	return func(s *Symbols) {
		s.quote = q
	}
}

// WithSeparator replaces the value separator character.
func WithSeparator(sep rune) SymbolsOption {
	return func(s *Symbols) {
		s.separator = sep
	}
}

// NewSymbols builds a Symbols value. Without options the result accepts
// square brackets and parentheses, uses a double quote and a comma, which
// matches the common WKT dialects.
func NewSymbols(opts ...SymbolsOption) (*Symbols, error) {
	s := &Symbols{
		brackets:  []Bracket{{'[', ']'}, {'(', ')'}},
		quote:     '"',
		separator: ',',
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.brackets) == 0 {
		return nil, fmt.Errorf("wkt: symbols need at least one bracket pair")
	}
	for _, b := range s.brackets {
		if b.Open == b.Close {
			return nil, fmt.Errorf("wkt: bracket pair %q/%q is not distinct", b.Open, b.Close)
		}
		for _, r := range []rune{s.quote, s.separator} {
			if b.Open == r || b.Close == r {
				return nil, fmt.Errorf("wkt: bracket %q collides with quote or separator", r)
			}
		}
	}
	if s.quote == s.separator {
		return nil, fmt.Errorf("wkt: quote and separator must differ")
	}
	return s, nil
}

var defaultSymbols = &Symbols{
	brackets:  []Bracket{{'[', ']'}, {'(', ')'}},
	quote:     '"',
	separator: ',',
}

// DefaultSymbols returns the shared default symbol set.
func DefaultSymbols() *Symbols {
	return defaultSymbols
}

// Brackets returns a copy of the accepted bracket pairs.
func (s *Symbols) Brackets() []Bracket {
	return append([]Bracket(nil), s.brackets...)
}

// Quote returns the quote character.
func (s *Symbols) Quote() rune {
	return s.quote
}

// Separator returns the value separator character.
func (s *Symbols) Separator() rune {
	return s.separator
}

// CanonicalBracket returns the pair written when formatting.
func (s *Symbols) CanonicalBracket() Bracket {
	return s.brackets[0]
}

func (s *Symbols) matchingClose(open rune) (rune, bool) {
	for _, b := range s.brackets {
		if b.Open == open {
			return b.Close, true
		}
	}
	return 0, false
}

// Equal reports whether two symbol sets accept and produce the same text.
func (s *Symbols) Equal(o *Symbols) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.quote != o.quote || s.separator != o.separator || len(s.brackets) != len(o.brackets) {
		return false
	}
	for i, b := range s.brackets {
		if o.brackets[i] != b {
			return false
		}
	}
	return true
}
