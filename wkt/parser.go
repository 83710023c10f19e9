package wkt

// Parser reads WKT text and materializes the objects it describes. A
// Parser keeps per-call warning state and is therefore not safe for
// concurrent use; create one instance per goroutine.
type Parser struct {
	symbols    *Symbols
	convention Convention

	ignored  map[string][]string
	warnings *Warnings
}

// NewParser returns a parser using the given symbols, or the defaults when
// symbols is nil.
func NewParser(symbols *Symbols, convention Convention) *Parser {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &Parser{symbols: symbols, convention: convention}
}

// Parse reads one object starting at pos and returns it together with the
// index of the first character after the object. Unknown keywords below
// the root are tolerated and recorded as warnings; an unknown root keyword
// is a hard error because no object can be produced from it.
func (p *Parser) Parse(text string, pos int) (any, int, error) {
	p.warnings = nil
	p.ignored = make(map[string][]string)
	cursor := pos
	root, err := parseElement(text, &cursor, p.symbols)
	if err != nil {
		return nil, cursor, err
	}
	obj, err := p.parseObject(root)
	if err != nil {
		return nil, cursor, err
	}
	return obj, cursor, nil
}

// warn records a non-fatal problem against the current parse.
func (p *Parser) warn(text string, cause error) {
	if p.warnings == nil {
		p.warnings = &Warnings{ignored: p.ignored}
	}
	p.warnings.add(text, cause)
}

// takeWarnings returns the warnings of the last parse, or nil if there
// were none, and detaches them from the parser. The value stays valid only
// until the next parse unless published.
func (p *Parser) takeWarnings(root any) *Warnings {
	w := p.warnings
	p.warnings = nil
	if w == nil {
		if len(p.ignored) == 0 {
			return nil
		}
		w = &Warnings{ignored: p.ignored}
	}
	w.root = root
	return w
}
