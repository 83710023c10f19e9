package wkt

import "strings"

// KeywordCase controls whether element keywords are written in upper case
// or in camel case.
type KeywordCase int

const (
	// CaseDefault selects upper case for the version 1 dialects and camel
	// case for WKT 2.
	CaseDefault KeywordCase = iota
	UpperCase
	CamelCase
)

func (k KeywordCase) String() string {
	switch k {
	case UpperCase:
		return "upper"
	case CamelCase:
		return "camel"
	}
	return "default"
}

// camelKeywords maps canonical upper-case keywords to their camel-case
// spelling. Keywords absent from the map are written as given.
var camelKeywords = map[string]string{
	"GEODCRS":        "GeodCRS",
	"GEOGCRS":        "GeogCRS",
	"PROJCRS":        "ProjCRS",
	"VERTCRS":        "VertCRS",
	"COMPOUNDCRS":    "CompoundCRS",
	"BASEGEOGCRS":    "BaseGeogCRS",
	"BASEGEODCRS":    "BaseGeodCRS",
	"DATUM":          "Datum",
	"VDATUM":         "VDatum",
	"ELLIPSOID":      "Ellipsoid",
	"PRIMEM":         "PrimeM",
	"CS":             "CS",
	"AXIS":           "Axis",
	"ORDER":          "Order",
	"UNIT":           "Unit",
	"ANGLEUNIT":      "AngleUnit",
	"LENGTHUNIT":     "LengthUnit",
	"SCALEUNIT":      "ScaleUnit",
	"TIMEUNIT":       "TimeUnit",
	"CONVERSION":     "Conversion",
	"METHOD":         "Method",
	"PARAMETER":      "Parameter",
	"ID":             "Id",
	"SCOPE":          "Scope",
	"AREA":           "Area",
	"BBOX":           "BBox",
	"VERTICALEXTENT": "VerticalExtent",
	"TIMEEXTENT":     "TimeExtent",
	"REMARK":         "Remark",
	"ANCHOR":         "Anchor",
	"TOWGS84":        "ToWGS84",
	"AUTHORITY":      "Authority",
	"GEOGCS":         "GeogCS",
	"GEOCCS":         "GeocCS",
	"PROJCS":         "ProjCS",
	"VERT_CS":        "Vert_CS",
	"COMPD_CS":       "Compd_CS",
	"SPHEROID":       "Spheroid",
	"PROJECTION":     "Projection",
	"VERT_DATUM":     "Vert_Datum",
	"PARAM_MT":       "Param_MT",
	"INVERSE_MT":     "Inverse_MT",
	"CONCAT_MT":      "Concat_MT",
	"USAGE":          "Usage",
}

// spell returns the keyword in the requested case. Upper case is always
// available; camel case falls back to the given spelling.
func spell(keyword string, toUpper bool) string {
	if toUpper {
		return strings.ToUpper(keyword)
	}
	if camel, ok := camelKeywords[strings.ToUpper(keyword)]; ok {
		return camel
	}
	return keyword
}
