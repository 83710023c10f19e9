package wkt

import "github.com/muesli/termenv"

// ElementKind categorizes a fragment of WKT output for syntax coloring and
// character-encoding decisions.
type ElementKind int

const (
	// ElementKeyword is an element keyword such as GEOGCS.
	ElementKeyword ElementKind = iota
	// ElementName is a quoted object name.
	ElementName
	// ElementNumber is a floating point value.
	ElementNumber
	// ElementInteger is a whole value such as an identifier code.
	ElementInteger
	// ElementUnit is a unit symbol.
	ElementUnit
	// ElementRemarks is free text inside a REMARK element; its characters
	// are never transliterated.
	ElementRemarks
	// ElementError marks the placeholder written for unformattable
	// objects.
	ElementError
)

// Colors assigns ANSI colors to element kinds. The colors wrap token text
// with SGR escape sequences only, so stripping the sequences recovers the
// plain WKT unchanged. A nil *Colors disables coloring.
type Colors struct {
	profile termenv.Profile
	colors  map[ElementKind]termenv.Color
}

// NewColors builds an immutable color set over the given termenv profile.
// The mapping is copied.
func NewColors(profile termenv.Profile, colors map[ElementKind]termenv.Color) *Colors {
	m := make(map[ElementKind]termenv.Color, len(colors))
	for k, v := range colors {
		m[k] = v
	}
	return &Colors{profile: profile, colors: m}
}

// DefaultColors returns the palette used by the command-line tools:
// cyan keywords, yellow numbers and units, faint remarks, red errors.
func DefaultColors() *Colors {
	p := termenv.ANSI
	return NewColors(p, map[ElementKind]termenv.Color{
		ElementKeyword: p.Color("6"),
		ElementNumber:  p.Color("3"),
		ElementInteger: p.Color("3"),
		ElementUnit:    p.Color("3"),
		ElementRemarks: p.Color("8"),
		ElementError:   p.Color("1"),
	})
}

func (c *Colors) apply(kind ElementKind, text string) string {
	if c == nil {
		return text
	}
	col, ok := c.colors[kind]
	if !ok {
		return text
	}
	return c.profile.String(text).Foreground(col).String()
}
