package wkt

import (
	"time"

	"github.com/georef/wkt/unit"
)

// CRS is implemented by every coordinate reference system in this package.
type CRS interface {
	Formattable
	crs()
}

// Identifier references an object definition in an authority's registry,
// such as EPSG:4326. It formats as AUTHORITY["EPSG","4326"] in WKT 1 and
// ID["EPSG",4326] in WKT 2.
type Identifier struct {
	Authority string
	Code      string
	Version   string
}

// Extent describes the domain of validity of a CRS.
type Extent struct {
	Scope    string
	Area     string
	BBox     *BoundingBox
	Vertical *VerticalExtent
	Temporal *TemporalExtent
}

// BoundingBox is a geographic extent in decimal degrees,
// south-west corner first.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// VerticalExtent is a height range.
type VerticalExtent struct {
	Minimum float64
	Maximum float64
	Unit    unit.Unit
}

// TemporalExtent is a time range.
type TemporalExtent struct {
	Start time.Time
	End   time.Time
}

// Ellipsoid is a reference ellipsoid. An InverseFlattening of zero means a
// sphere.
type Ellipsoid struct {
	Name              string
	SemiMajorAxis     float64
	InverseFlattening float64
	Unit              unit.Unit
	ID                *Identifier
}

// PrimeMeridian is the origin of longitudes.
type PrimeMeridian struct {
	Name      string
	Longitude float64
	Unit      unit.Unit
	ID        *Identifier
}

// Greenwich is the prime meridian assumed when a definition omits one.
var Greenwich = &PrimeMeridian{Name: "Greenwich", Longitude: 0, Unit: unit.Degree}

// GeodeticDatum ties an ellipsoid to the Earth. ToWGS84, when present,
// holds the 3 or 7 Bursa-Wolf parameters of the legacy TOWGS84 element.
type GeodeticDatum struct {
	Name      string
	Ellipsoid *Ellipsoid
	Anchor    string
	ToWGS84   []float64
	ID        *Identifier
}

// VerticalDatum is the origin of a vertical CRS. Kind is the legacy WKT 1
// datum type code (2005 for geoidal).
type VerticalDatum struct {
	Name   string
	Kind   int
	Anchor string
	ID     *Identifier
}

// AxisDirection is the direction of increasing axis values, stored in the
// lower-case spelling of WKT 2.
type AxisDirection string

const (
	DirectionNorth       AxisDirection = "north"
	DirectionSouth       AxisDirection = "south"
	DirectionEast        AxisDirection = "east"
	DirectionWest        AxisDirection = "west"
	DirectionUp          AxisDirection = "up"
	DirectionDown        AxisDirection = "down"
	DirectionFuture      AxisDirection = "future"
	DirectionPast        AxisDirection = "past"
	DirectionGeocentricX AxisDirection = "geocentricX"
	DirectionGeocentricY AxisDirection = "geocentricY"
	DirectionGeocentricZ AxisDirection = "geocentricZ"
	DirectionOther       AxisDirection = "other"
)

// Axis is one axis of a coordinate system.
type Axis struct {
	Name         string
	Abbreviation string
	Direction    AxisDirection
	Order        int
	Unit         unit.Unit
}

// CoordinateSystem is the set of axes of a CRS with their common unit.
// Type is the WKT 2 coordinate system type: "ellipsoidal", "Cartesian" or
// "vertical".
type CoordinateSystem struct {
	Type      string
	Dimension int
	Axes      []Axis
	Unit      unit.Unit
}

// GeodeticCRS is a geographic or geocentric coordinate reference system.
// A Cartesian coordinate system type makes it geocentric.
type GeodeticCRS struct {
	Name          string
	Datum         *GeodeticDatum
	PrimeMeridian *PrimeMeridian
	CS            CoordinateSystem
	Extent        *Extent
	Remarks       string
	ID            *Identifier
}

// Parameter is one operation parameter value.
type Parameter struct {
	Name  string
	Value float64
	Unit  unit.Unit
	ID    *Identifier
}

// Conversion is the defining operation of a projected CRS.
type Conversion struct {
	Name       string
	Method     string
	MethodID   *Identifier
	Parameters []Parameter
	ID         *Identifier
}

// ProjectedCRS is a map projection applied over a geodetic base CRS.
type ProjectedCRS struct {
	Name       string
	Base       *GeodeticCRS
	Conversion *Conversion
	CS         CoordinateSystem
	Extent     *Extent
	Remarks    string
	ID         *Identifier
}

// VerticalCRS is a one-dimensional CRS for heights or depths.
type VerticalCRS struct {
	Name    string
	Datum   *VerticalDatum
	CS      CoordinateSystem
	Extent  *Extent
	Remarks string
	ID      *Identifier
}

// CompoundCRS aggregates two or more single CRS into one.
type CompoundCRS struct {
	Name       string
	Components []CRS
	Extent     *Extent
	Remarks    string
	ID         *Identifier
}

func (*GeodeticCRS) crs()  {}
func (*ProjectedCRS) crs() {}
func (*VerticalCRS) crs()  {}
func (*CompoundCRS) crs()  {}

var (
	_ CRS = (*GeodeticCRS)(nil)
	_ CRS = (*ProjectedCRS)(nil)
	_ CRS = (*VerticalCRS)(nil)
	_ CRS = (*CompoundCRS)(nil)
)
