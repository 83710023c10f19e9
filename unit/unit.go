// Package unit provides the units of measure that appear in Well-Known Text:
// angular, linear, scale and temporal units together with their conversion
// factor to the SI base unit of their kind.
package unit

import (
	"fmt"
	"strings"
)

// Kind classifies a unit by the quantity it measures.
type Kind int

const (
	Angular Kind = iota
	Linear
	Scale
	Temporal
)

func (k Kind) String() string {
	switch k {
	case Angular:
		return "angular"
	case Linear:
		return "linear"
	case Scale:
		return "scale"
	case Temporal:
		return "temporal"
	}
	return "unknown"
}

// Unit is a unit of measure. Factor converts a value expressed in this unit
// to the base unit of its kind: radian, metre, unity or second.
type Unit struct {
	Symbol string
	Kind   Kind
	Factor float64
}

// IsZero reports whether u is the zero value, used to mean "no unit given".
func (u Unit) IsZero() bool {
	return u == Unit{}
}

func (u Unit) String() string {
	return u.Symbol
}

// Units commonly found in coordinate reference system definitions. Angular
// factors use the EPSG value for the degree (EPSG:9102).
var (
	Radian    = Unit{"radian", Angular, 1}
	Degree    = Unit{"degree", Angular, 0.0174532925199433}
	Grad      = Unit{"grad", Angular, 0.015707963267948967}
	ArcMinute = Unit{"arc-minute", Angular, 0.0002908882086657216}
	ArcSecond = Unit{"arc-second", Angular, 4.84813681109536e-06}

	Metre     = Unit{"metre", Linear, 1}
	Kilometre = Unit{"kilometre", Linear, 1000}
	Foot      = Unit{"foot", Linear, 0.3048}
	USFoot    = Unit{"US survey foot", Linear, 0.30480060960121924}

	Unity = Unit{"unity", Scale, 1}
	PPM   = Unit{"parts per million", Scale, 1e-06}

	Second = Unit{"second", Temporal, 1}
	Day    = Unit{"day", Temporal, 86400}
	Year   = Unit{"year", Temporal, 3.1556925445e+07}
)

// UnknownError is returned by Parse for a symbol with no known unit.
type UnknownError struct {
	Symbol string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unit: unknown symbol %q", e.Symbol)
}

var aliases = map[string]Unit{
	"rad":               Radian,
	"radian":            Radian,
	"radians":           Radian,
	"deg":               Degree,
	"degree":            Degree,
	"degrees":           Degree,
	"°":                 Degree,
	"grad":              Grad,
	"grads":             Grad,
	"gon":               Grad,
	"gradian":           Grad,
	"arc-minute":        ArcMinute,
	"arcminute":         ArcMinute,
	"min":               ArcMinute,
	"arc-second":        ArcSecond,
	"arcsecond":         ArcSecond,
	"sec":               ArcSecond,
	"m":                 Metre,
	"metre":             Metre,
	"metres":            Metre,
	"meter":             Metre,
	"meters":            Metre,
	"km":                Kilometre,
	"kilometre":         Kilometre,
	"kilometer":         Kilometre,
	"ft":                Foot,
	"foot":              Foot,
	"feet":              Foot,
	"us-ft":             USFoot,
	"us survey foot":    USFoot,
	"foot_us":           USFoot,
	"us_survey_feet":    USFoot,
	"unity":             Unity,
	"one":               Unity,
	"":                  Unity,
	"ppm":               PPM,
	"parts per million": PPM,
	"s":                 Second,
	"second":            Second,
	"seconds":           Second,
	"day":               Day,
	"d":                 Day,
	"year":              Year,
	"years":             Year,
	"yr":                Year,
	"a":                 Year,
}

// Parse returns the unit identified by the given symbol or name.
// Matching is case-insensitive and tolerates the spellings most commonly
// found in WKT from different producers.
func Parse(symbol string) (Unit, error) {
	u, ok := aliases[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return Unit{}, &UnknownError{Symbol: symbol}
	}
	return u, nil
}
