package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/georef/wkt/unit"
)

// parseObject is the keyword dispatch: given a parsed element, produce the
// object it describes.
func (p *Parser) parseObject(el *Element) (any, error) {
	switch strings.ToUpper(el.Keyword()) {
	case "GEOGCS", "GEOCCS", "GEODCRS", "GEOGCRS", "BASEGEOGCRS", "BASEGEODCRS":
		return p.parseGeodeticCRS(el)
	case "PROJCS", "PROJCRS":
		return p.parseProjectedCRS(el)
	case "VERT_CS", "VERTCRS":
		return p.parseVerticalCRS(el)
	case "COMPD_CS", "COMPOUNDCRS":
		return p.parseCompoundCRS(el)
	case "DATUM", "TRF":
		return p.parseDatum(el)
	case "VERT_DATUM", "VDATUM", "VRF":
		return p.parseVerticalDatum(el)
	case "ELLIPSOID", "SPHEROID":
		return p.parseEllipsoid(el)
	case "PRIMEM", "PRIMEMERIDIAN":
		return p.parsePrimeMeridian(el)
	case "UNIT", "ANGLEUNIT", "LENGTHUNIT", "SCALEUNIT", "TIMEUNIT":
		return p.parseUnit(el, unit.Kind(-1))
	case "PARAM_MT":
		return p.parseParamTransform(el)
	case "INVERSE_MT":
		return p.parseInverseTransform(el)
	case "CONCAT_MT":
		return p.parseConcatTransform(el)
	}
	return nil, &ParseError{Text: el.text, Offset: el.Offset(),
		Msg: fmt.Sprintf("unknown keyword %q", el.Keyword())}
}

var crsKeywords = []string{
	"GEOGCS", "GEOCCS", "GEODCRS", "GEOGCRS",
	"PROJCS", "PROJCRS", "VERT_CS", "VERTCRS", "COMPD_CS", "COMPOUNDCRS",
}

// parseIdentifier pulls an optional AUTHORITY (WKT 1) or ID (WKT 2)
// element. In WKT 1 both values are quoted strings; in WKT 2 the code and
// version may be numbers.
func (p *Parser) parseIdentifier(parent *Element) (*Identifier, error) {
	el, err := parent.PullElement(Optional, "AUTHORITY", "ID")
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, nil
	}
	authority, err := el.PullString("authority name")
	if err != nil {
		return nil, err
	}
	id := &Identifier{Authority: authority}
	if code, ok := el.OptionalString(); ok {
		id.Code = code
	} else if v, ok := el.OptionalDouble(); ok {
		id.Code = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		return nil, el.missing("code")
	}
	if version, ok := el.OptionalString(); ok {
		id.Version = version
	} else if v, ok := el.OptionalDouble(); ok {
		id.Version = strconv.FormatFloat(v, 'f', -1, 64)
	}
	el.Close(p.ignored)
	return id, nil
}

// parseUnit reads a unit element. The keyword determines the unit kind for
// the WKT 2 spellings; a plain UNIT falls back to the canonical unit
// catalogue, then to the hint. The unit's AUTHORITY or ID element is
// consumed and discarded: unit.Unit carries no identifier, so unit codes
// are not preserved across a round trip.
func (p *Parser) parseUnit(el *Element, hint unit.Kind) (unit.Unit, error) {
	name, err := el.PullString("unit name")
	if err != nil {
		return unit.Unit{}, err
	}
	factor, err := el.PullDouble("unit conversion factor")
	if err != nil {
		return unit.Unit{}, err
	}
	kind := hint
	switch strings.ToUpper(el.Keyword()) {
	case "ANGLEUNIT":
		kind = unit.Angular
	case "LENGTHUNIT":
		kind = unit.Linear
	case "SCALEUNIT":
		kind = unit.Scale
	case "TIMEUNIT":
		kind = unit.Temporal
	default:
		if known, err := unit.Parse(name); err == nil {
			kind = known.Kind
		} else if hint == unit.Kind(-1) {
			p.warn(fmt.Sprintf("unknown unit %q, assuming a scale factor", name), err)
			kind = unit.Scale
		}
	}
	if _, err := p.parseIdentifier(el); err != nil {
		return unit.Unit{}, err
	}
	el.Close(p.ignored)
	return unit.Unit{Symbol: name, Kind: kind, Factor: factor}, nil
}

// pullUnit pulls an optional unit element from parent.
func (p *Parser) pullUnit(parent *Element, hint unit.Kind) (unit.Unit, error) {
	keywords := []string{"UNIT"}
	switch hint {
	case unit.Angular:
		keywords = append(keywords, "ANGLEUNIT")
	case unit.Linear:
		keywords = append(keywords, "LENGTHUNIT")
	case unit.Scale:
		keywords = append(keywords, "SCALEUNIT")
	case unit.Temporal:
		keywords = append(keywords, "TIMEUNIT")
	default:
		keywords = append(keywords, "ANGLEUNIT", "LENGTHUNIT", "SCALEUNIT", "TIMEUNIT")
	}
	el, err := parent.PullElement(Optional, keywords...)
	if err != nil || el == nil {
		return unit.Unit{}, err
	}
	return p.parseUnit(el, hint)
}

func (p *Parser) parseEllipsoid(el *Element) (*Ellipsoid, error) {
	name, err := el.PullString("ellipsoid name")
	if err != nil {
		return nil, err
	}
	semiMajor, err := el.PullDouble("semi-major axis")
	if err != nil {
		return nil, err
	}
	invFlattening, err := el.PullDouble("inverse flattening")
	if err != nil {
		return nil, err
	}
	u, err := p.pullUnit(el, unit.Linear)
	if err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier(el)
	if err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return &Ellipsoid{Name: name, SemiMajorAxis: semiMajor,
		InverseFlattening: invFlattening, Unit: u, ID: id}, nil
}

func (p *Parser) parsePrimeMeridian(el *Element) (*PrimeMeridian, error) {
	name, err := el.PullString("prime meridian name")
	if err != nil {
		return nil, err
	}
	longitude, err := el.PullDouble("longitude")
	if err != nil {
		return nil, err
	}
	u, err := p.pullUnit(el, unit.Angular)
	if err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier(el)
	if err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return &PrimeMeridian{Name: name, Longitude: longitude, Unit: u, ID: id}, nil
}

func (p *Parser) parseDatum(el *Element) (*GeodeticDatum, error) {
	name, err := el.PullString("datum name")
	if err != nil {
		return nil, err
	}
	ellipsoidEl, err := el.PullElement(Mandatory, "ELLIPSOID", "SPHEROID")
	if err != nil {
		return nil, err
	}
	ellipsoid, err := p.parseEllipsoid(ellipsoidEl)
	if err != nil {
		return nil, err
	}
	datum := &GeodeticDatum{Name: name, Ellipsoid: ellipsoid}
	if toWGS84, err := el.PullElement(Optional, "TOWGS84"); err != nil {
		return nil, err
	} else if toWGS84 != nil {
		for {
			v, ok := toWGS84.OptionalDouble()
			if !ok {
				break
			}
			datum.ToWGS84 = append(datum.ToWGS84, v)
		}
		if n := len(datum.ToWGS84); n != 3 && n != 7 {
			p.warn(fmt.Sprintf("TOWGS84 in %q has %d values, expected 3 or 7", name, n), nil)
			datum.ToWGS84 = nil
		}
		toWGS84.Close(p.ignored)
	}
	if anchor, err := el.PullElement(Optional, "ANCHOR"); err != nil {
		return nil, err
	} else if anchor != nil {
		if datum.Anchor, err = anchor.PullString("anchor definition"); err != nil {
			return nil, err
		}
		anchor.Close(p.ignored)
	}
	if datum.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return datum, nil
}

func (p *Parser) parseVerticalDatum(el *Element) (*VerticalDatum, error) {
	name, err := el.PullString("datum name")
	if err != nil {
		return nil, err
	}
	datum := &VerticalDatum{Name: name}
	if kind, ok := el.OptionalDouble(); ok {
		datum.Kind = int(kind)
	}
	if anchor, err := el.PullElement(Optional, "ANCHOR"); err != nil {
		return nil, err
	} else if anchor != nil {
		if datum.Anchor, err = anchor.PullString("anchor definition"); err != nil {
			return nil, err
		}
		anchor.Close(p.ignored)
	}
	if datum.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return datum, nil
}

// knownDirections matches the WKT 2 axis direction code list, which also
// covers the upper-case WKT 1 spellings through case folding.
var knownDirections = []AxisDirection{
	DirectionNorth, DirectionSouth, DirectionEast, DirectionWest,
	DirectionUp, DirectionDown, DirectionFuture, DirectionPast,
	DirectionGeocentricX, DirectionGeocentricY, DirectionGeocentricZ,
	DirectionOther,
}

func (p *Parser) parseAxis(el *Element) (Axis, error) {
	name, err := el.PullString("axis name")
	if err != nil {
		return Axis{}, err
	}
	axis := Axis{Name: name}
	if open := strings.IndexByte(name, '('); open >= 0 {
		if end := strings.IndexByte(name[open:], ')'); end > 0 {
			axis.Name = strings.TrimSpace(name[:open])
			axis.Abbreviation = name[open+1 : open+end]
		}
	}
	direction, err := el.PullVoidElement("axis direction")
	if err != nil {
		return Axis{}, err
	}
	axis.Direction = AxisDirection(strings.ToLower(direction))
	if axis.Direction == "geocentricx" || axis.Direction == "geocentricy" || axis.Direction == "geocentricz" {
		axis.Direction = AxisDirection("geocentric" + strings.ToUpper(direction[len(direction)-1:]))
	}
	known := false
	for _, d := range knownDirections {
		if axis.Direction == d {
			known = true
			break
		}
	}
	if !known {
		p.warn(fmt.Sprintf("unknown axis direction %q", direction), nil)
	}
	if order, err := el.PullElement(Optional, "ORDER"); err != nil {
		return Axis{}, err
	} else if order != nil {
		if axis.Order, err = order.PullInteger("axis order"); err != nil {
			return Axis{}, err
		}
		order.Close(p.ignored)
	}
	if axis.Unit, err = p.pullUnit(el, unit.Kind(-1)); err != nil {
		return Axis{}, err
	}
	el.Close(p.ignored)
	return axis, nil
}

// parseCoordinateSystem gathers the CS, AXIS and unit elements of a CRS.
// The unit hint applies to a plain UNIT keyword; defType is used when no
// CS element is present.
func (p *Parser) parseCoordinateSystem(parent *Element, defType string, hint unit.Kind) (CoordinateSystem, error) {
	cs := CoordinateSystem{Type: defType}
	if csEl, err := parent.PullElement(Optional, "CS"); err != nil {
		return cs, err
	} else if csEl != nil {
		kind, err := csEl.PullVoidElement("coordinate system type")
		if err != nil {
			return cs, err
		}
		cs.Type = kind
		if cs.Dimension, err = csEl.PullInteger("dimension"); err != nil {
			return cs, err
		}
		csEl.Close(p.ignored)
	}
	for {
		axisEl, err := parent.PullElement(Optional, "AXIS")
		if err != nil {
			return cs, err
		}
		if axisEl == nil {
			break
		}
		axis, err := p.parseAxis(axisEl)
		if err != nil {
			return cs, err
		}
		cs.Axes = append(cs.Axes, axis)
	}
	u, err := p.pullUnit(parent, hint)
	if err != nil {
		return cs, err
	}
	cs.Unit = u
	if cs.Dimension == 0 && len(cs.Axes) > 0 {
		cs.Dimension = len(cs.Axes)
	}
	return cs, nil
}

// parseExtent gathers the scope, area and extent elements, including the
// WKT 2019 USAGE wrapper. Returns nil when none are present.
func (p *Parser) parseExtent(parent *Element) (*Extent, error) {
	extent := &Extent{}
	found := false
	if usage, err := parent.PullElement(Optional, "USAGE"); err != nil {
		return nil, err
	} else if usage != nil {
		inner, err := p.parseExtent(usage)
		if err != nil {
			return nil, err
		}
		usage.Close(p.ignored)
		if inner != nil {
			extent = inner
			found = true
		}
	}
	if scope, err := parent.PullElement(Optional, "SCOPE"); err != nil {
		return nil, err
	} else if scope != nil {
		if extent.Scope, err = scope.PullString("scope description"); err != nil {
			return nil, err
		}
		scope.Close(p.ignored)
		found = true
	}
	if area, err := parent.PullElement(Optional, "AREA"); err != nil {
		return nil, err
	} else if area != nil {
		if extent.Area, err = area.PullString("area description"); err != nil {
			return nil, err
		}
		area.Close(p.ignored)
		found = true
	}
	if bbox, err := parent.PullElement(Optional, "BBOX"); err != nil {
		return nil, err
	} else if bbox != nil {
		var b BoundingBox
		for _, v := range []*float64{&b.South, &b.West, &b.North, &b.East} {
			if *v, err = bbox.PullDouble("bounding box corner"); err != nil {
				return nil, err
			}
		}
		bbox.Close(p.ignored)
		extent.BBox = &b
		found = true
	}
	if vert, err := parent.PullElement(Optional, "VERTICALEXTENT"); err != nil {
		return nil, err
	} else if vert != nil {
		var v VerticalExtent
		if v.Minimum, err = vert.PullDouble("minimum height"); err != nil {
			return nil, err
		}
		if v.Maximum, err = vert.PullDouble("maximum height"); err != nil {
			return nil, err
		}
		if v.Unit, err = p.pullUnit(vert, unit.Linear); err != nil {
			return nil, err
		}
		vert.Close(p.ignored)
		extent.Vertical = &v
		found = true
	}
	if temporal, err := parent.PullElement(Optional, "TIMEEXTENT"); err != nil {
		return nil, err
	} else if temporal != nil {
		var t TemporalExtent
		if t.Start, err = temporal.PullDate("extent start"); err != nil {
			return nil, err
		}
		if t.End, err = temporal.PullDate("extent end"); err != nil {
			return nil, err
		}
		temporal.Close(p.ignored)
		extent.Temporal = &t
		found = true
	}
	if !found {
		return nil, nil
	}
	return extent, nil
}

// pullRemarks reads an optional REMARK or REMARKS element.
func (p *Parser) pullRemarks(parent *Element) (string, error) {
	el, err := parent.PullElement(Optional, "REMARK", "REMARKS")
	if err != nil || el == nil {
		return "", err
	}
	remarks, err := el.PullString("remark text")
	if err != nil {
		return "", err
	}
	el.Close(p.ignored)
	return remarks, nil
}

func (p *Parser) parseGeodeticCRS(el *Element) (*GeodeticCRS, error) {
	name, err := el.PullString("CRS name")
	if err != nil {
		return nil, err
	}
	datumEl, err := el.PullElement(Mandatory, "DATUM", "TRF")
	if err != nil {
		return nil, err
	}
	datum, err := p.parseDatum(datumEl)
	if err != nil {
		return nil, err
	}
	crs := &GeodeticCRS{Name: name, Datum: datum}
	if pmEl, err := el.PullElement(Optional, "PRIMEM", "PRIMEMERIDIAN"); err != nil {
		return nil, err
	} else if pmEl != nil {
		if crs.PrimeMeridian, err = p.parsePrimeMeridian(pmEl); err != nil {
			return nil, err
		}
	} else {
		crs.PrimeMeridian = Greenwich
	}
	defType := "ellipsoidal"
	hint := unit.Angular
	if strings.EqualFold(el.Keyword(), "GEOCCS") {
		defType = "Cartesian"
		hint = unit.Linear
	}
	if crs.CS, err = p.parseCoordinateSystem(el, defType, hint); err != nil {
		return nil, err
	}
	if crs.Extent, err = p.parseExtent(el); err != nil {
		return nil, err
	}
	if crs.Remarks, err = p.pullRemarks(el); err != nil {
		return nil, err
	}
	if crs.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return crs, nil
}

func (p *Parser) parseProjectedCRS(el *Element) (*ProjectedCRS, error) {
	name, err := el.PullString("CRS name")
	if err != nil {
		return nil, err
	}
	baseEl, err := el.PullElement(Mandatory, "GEOGCS", "BASEGEOGCRS", "BASEGEODCRS")
	if err != nil {
		return nil, err
	}
	base, err := p.parseGeodeticCRS(baseEl)
	if err != nil {
		return nil, err
	}
	crs := &ProjectedCRS{Name: name, Base: base}
	if crs.Conversion, err = p.parseConversion(el); err != nil {
		return nil, err
	}
	if crs.CS, err = p.parseCoordinateSystem(el, "Cartesian", unit.Linear); err != nil {
		return nil, err
	}
	if crs.Extent, err = p.parseExtent(el); err != nil {
		return nil, err
	}
	if crs.Remarks, err = p.pullRemarks(el); err != nil {
		return nil, err
	}
	if crs.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return crs, nil
}

// parseConversion accepts both the WKT 2 CONVERSION element and the WKT 1
// pair of a PROJECTION element plus PARAMETER siblings.
func (p *Parser) parseConversion(parent *Element) (*Conversion, error) {
	if convEl, err := parent.PullElement(Optional, "CONVERSION"); err != nil {
		return nil, err
	} else if convEl != nil {
		conv := &Conversion{}
		if conv.Name, err = convEl.PullString("conversion name"); err != nil {
			return nil, err
		}
		methodEl, err := convEl.PullElement(Mandatory, "METHOD", "PROJECTION")
		if err != nil {
			return nil, err
		}
		if conv.Method, err = methodEl.PullString("method name"); err != nil {
			return nil, err
		}
		if conv.MethodID, err = p.parseIdentifier(methodEl); err != nil {
			return nil, err
		}
		methodEl.Close(p.ignored)
		if conv.Parameters, err = p.parseParameters(convEl, unit.Kind(-1)); err != nil {
			return nil, err
		}
		if conv.ID, err = p.parseIdentifier(convEl); err != nil {
			return nil, err
		}
		convEl.Close(p.ignored)
		return conv, nil
	}
	projEl, err := parent.PullElement(Optional, "PROJECTION")
	if err != nil || projEl == nil {
		return nil, err
	}
	conv := &Conversion{}
	if conv.Method, err = projEl.PullString("projection name"); err != nil {
		return nil, err
	}
	conv.Name = conv.Method
	if conv.MethodID, err = p.parseIdentifier(projEl); err != nil {
		return nil, err
	}
	projEl.Close(p.ignored)
	if conv.Parameters, err = p.parseParameters(parent, unit.Kind(-1)); err != nil {
		return nil, err
	}
	return conv, nil
}

func (p *Parser) parseParameters(parent *Element, hint unit.Kind) ([]Parameter, error) {
	var params []Parameter
	for {
		el, err := parent.PullElement(Optional, "PARAMETER")
		if err != nil {
			return nil, err
		}
		if el == nil {
			return params, nil
		}
		param := Parameter{}
		if param.Name, err = el.PullString("parameter name"); err != nil {
			return nil, err
		}
		if param.Value, err = el.PullDouble("parameter value"); err != nil {
			return nil, err
		}
		if param.Unit, err = p.pullUnit(el, hint); err != nil {
			return nil, err
		}
		if param.ID, err = p.parseIdentifier(el); err != nil {
			return nil, err
		}
		el.Close(p.ignored)
		params = append(params, param)
	}
}

func (p *Parser) parseVerticalCRS(el *Element) (*VerticalCRS, error) {
	name, err := el.PullString("CRS name")
	if err != nil {
		return nil, err
	}
	datumEl, err := el.PullElement(Mandatory, "VERT_DATUM", "VDATUM", "VRF")
	if err != nil {
		return nil, err
	}
	datum, err := p.parseVerticalDatum(datumEl)
	if err != nil {
		return nil, err
	}
	crs := &VerticalCRS{Name: name, Datum: datum}
	if crs.CS, err = p.parseCoordinateSystem(el, "vertical", unit.Linear); err != nil {
		return nil, err
	}
	if crs.Extent, err = p.parseExtent(el); err != nil {
		return nil, err
	}
	if crs.Remarks, err = p.pullRemarks(el); err != nil {
		return nil, err
	}
	if crs.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return crs, nil
}

func (p *Parser) parseCompoundCRS(el *Element) (*CompoundCRS, error) {
	name, err := el.PullString("CRS name")
	if err != nil {
		return nil, err
	}
	crs := &CompoundCRS{Name: name}
	for {
		sub, err := el.PullElement(Optional, crsKeywords...)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			break
		}
		component, err := p.parseObject(sub)
		if err != nil {
			return nil, err
		}
		crs.Components = append(crs.Components, component.(CRS))
	}
	if len(crs.Components) < 2 {
		p.warn(fmt.Sprintf("compound CRS %q has %d component(s), expected at least 2",
			name, len(crs.Components)), nil)
	}
	if crs.Extent, err = p.parseExtent(el); err != nil {
		return nil, err
	}
	if crs.Remarks, err = p.pullRemarks(el); err != nil {
		return nil, err
	}
	if crs.ID, err = p.parseIdentifier(el); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return crs, nil
}

func (p *Parser) parseParamTransform(el *Element) (*ParamTransform, error) {
	method, err := el.PullString("method name")
	if err != nil {
		return nil, err
	}
	mt := &ParamTransform{Method: method}
	if mt.Parameters, err = p.parseParameters(el, unit.Kind(-1)); err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return mt, nil
}

var transformKeywords = []string{"PARAM_MT", "INVERSE_MT", "CONCAT_MT"}

func (p *Parser) parseInverseTransform(el *Element) (*InverseTransform, error) {
	sub, err := el.PullElement(Mandatory, transformKeywords...)
	if err != nil {
		return nil, err
	}
	inner, err := p.parseObject(sub)
	if err != nil {
		return nil, err
	}
	el.Close(p.ignored)
	return &InverseTransform{Transform: inner.(MathTransform)}, nil
}

func (p *Parser) parseConcatTransform(el *Element) (*ConcatTransform, error) {
	mt := &ConcatTransform{}
	for {
		sub, err := el.PullElement(Optional, transformKeywords...)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			break
		}
		step, err := p.parseObject(sub)
		if err != nil {
			return nil, err
		}
		mt.Steps = append(mt.Steps, step.(MathTransform))
	}
	el.Close(p.ignored)
	return mt, nil
}
