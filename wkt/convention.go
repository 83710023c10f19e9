package wkt

import (
	"fmt"
	"strings"
)

// Convention is a named variant of the WKT syntax and vocabulary. It
// controls which keywords the formatter emits, the default keyword case and
// the default name authority.
type Convention int

const (
	// WKT2 is the current ISO 19162 syntax, the default.
	WKT2 Convention = iota
	// WKT1 is the legacy OGC 01-009 syntax (GEOGCS, PROJCS, ...).
	WKT1
	// ESRI is WKT1 as produced by ESRI software, without authority
	// elements.
	ESRI
	// GeoTIFF is WKT1 with GeoTIFF-preferred names.
	GeoTIFF
	// Internal is WKT2 with every identifier emitted and non-ASCII
	// characters preserved, meant for debugging.
	Internal
)

func (c Convention) String() string {
	switch c {
	case WKT2:
		return "WKT2"
	case WKT1:
		return "WKT1"
	case ESRI:
		return "ESRI"
	case GeoTIFF:
		return "GeoTIFF"
	case Internal:
		return "Internal"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention maps a convention name, case-insensitively, back to its
// value. Used by command-line flags.
func ParseConvention(name string) (Convention, error) {
	for _, c := range []Convention{WKT2, WKT1, ESRI, GeoTIFF, Internal} {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("wkt: unknown convention %q", name)
}

// majorVersion is 1 for the legacy dialects and 2 otherwise.
func (c Convention) majorVersion() int {
	switch c {
	case WKT1, ESRI, GeoTIFF:
		return 1
	}
	return 2
}

// Authority returns the organization whose names are preferred when no
// explicit authority is configured.
func (c Convention) Authority() string {
	switch c {
	case WKT1:
		return "OGC"
	case ESRI:
		return "ESRI"
	case GeoTIFF:
		return "GeoTIFF"
	}
	return "EPSG"
}
