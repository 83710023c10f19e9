package wkt

import (
	"strconv"
	"strings"
)

// elementFunc writes small grammar-only elements, SCOPE or BBOX for
// example, without dedicating a type to each keyword.
type elementFunc struct {
	keyword string
	body    func(*Formatter)
}

func (e elementFunc) FormatTo(f *Formatter) string {
	e.body(f)
	return e.keyword
}

// FormatTo writes AUTHORITY["EPSG","4326"] under the version 1 dialects
// and ID["EPSG",4326] under WKT 2.
func (id *Identifier) FormatTo(f *Formatter) string {
	if f.Convention().majorVersion() == 1 {
		f.AppendString(id.Authority, ElementName)
		f.AppendString(id.Code, ElementName)
		return "AUTHORITY"
	}
	f.AppendString(id.Authority, ElementName)
	if code, err := strconv.ParseInt(id.Code, 10, 64); err == nil {
		f.AppendInt(code)
	} else {
		f.AppendString(id.Code, ElementName)
	}
	if id.Version != "" {
		f.AppendString(id.Version, ElementName)
	}
	return "ID"
}

func (e *Ellipsoid) FormatTo(f *Formatter) string {
	f.AppendString(e.Name, ElementName)
	f.AppendNumber(e.SemiMajorAxis)
	f.AppendNumber(e.InverseFlattening)
	if f.Convention().majorVersion() == 1 {
		appendIdentifier(f, e.ID)
		return "SPHEROID"
	}
	f.AppendUnit(e.Unit)
	appendIdentifier(f, e.ID)
	return "ELLIPSOID"
}

func (pm *PrimeMeridian) FormatTo(f *Formatter) string {
	f.AppendString(pm.Name, ElementName)
	f.AppendNumber(pm.Longitude)
	if f.Convention().majorVersion() != 1 {
		f.AppendUnit(pm.Unit)
	}
	appendIdentifier(f, pm.ID)
	return "PRIMEM"
}

func (d *GeodeticDatum) FormatTo(f *Formatter) string {
	f.AppendString(d.Name, ElementName)
	if d.Ellipsoid != nil {
		f.Append(d.Ellipsoid)
	} else {
		f.SetInvalidWKT("DATUM", errMissingEllipsoid)
	}
	if f.Convention().majorVersion() == 1 {
		if n := len(d.ToWGS84); n == 3 || n == 7 {
			f.Append(elementFunc{"TOWGS84", func(f *Formatter) {
				for _, v := range d.ToWGS84 {
					f.AppendNumber(v)
				}
			}})
		}
	} else if d.Anchor != "" {
		f.Append(elementFunc{"ANCHOR", func(f *Formatter) {
			f.AppendString(d.Anchor, ElementName)
		}})
	}
	appendIdentifier(f, d.ID)
	return "DATUM"
}

func (d *VerticalDatum) FormatTo(f *Formatter) string {
	f.AppendString(d.Name, ElementName)
	if f.Convention().majorVersion() == 1 {
		kind := d.Kind
		if kind == 0 {
			kind = 2005
		}
		f.AppendInt(int64(kind))
		appendIdentifier(f, d.ID)
		return "VERT_DATUM"
	}
	if d.Anchor != "" {
		f.Append(elementFunc{"ANCHOR", func(f *Formatter) {
			f.AppendString(d.Anchor, ElementName)
		}})
	}
	appendIdentifier(f, d.ID)
	return "VDATUM"
}

func (a Axis) FormatTo(f *Formatter) string {
	if f.Convention().majorVersion() == 1 {
		f.AppendString(a.Name, ElementName)
		f.AppendVoid(strings.ToUpper(string(a.Direction)))
		return "AXIS"
	}
	name := a.Name
	if a.Abbreviation != "" {
		name += " (" + a.Abbreviation + ")"
	}
	f.AppendString(name, ElementName)
	f.AppendVoid(string(a.Direction))
	if a.Order > 0 {
		order := int64(a.Order)
		f.Append(elementFunc{"ORDER", func(f *Formatter) {
			f.AppendInt(order)
		}})
	}
	f.AppendUnit(a.Unit)
	return "AXIS"
}

// appendCS writes the coordinate system of a CRS. WKT 2 leads with a
// CS[type,dimension] element and puts the common unit after the axes; the
// version 1 dialects have no CS element and put the unit first.
func appendCS(f *Formatter, cs CoordinateSystem) {
	if f.Convention().majorVersion() == 1 {
		f.AppendUnit(cs.Unit)
		for _, axis := range cs.Axes {
			f.Append(axis)
		}
		return
	}
	if cs.Type != "" {
		dim := cs.Dimension
		if dim == 0 {
			dim = len(cs.Axes)
		}
		f.Append(elementFunc{"CS", func(f *Formatter) {
			f.AppendVoid(cs.Type)
			f.AppendInt(int64(dim))
		}})
	}
	for _, axis := range cs.Axes {
		f.Append(axis)
	}
	f.AppendUnit(cs.Unit)
}

// appendExtent writes the domain of validity. The version 1 dialects have
// no extent elements, so it writes nothing under them.
func appendExtent(f *Formatter, e *Extent) {
	if e == nil || f.Convention().majorVersion() == 1 {
		return
	}
	if e.Scope != "" {
		f.Append(elementFunc{"SCOPE", func(f *Formatter) {
			f.AppendString(e.Scope, ElementName)
		}})
	}
	if e.Area != "" {
		f.Append(elementFunc{"AREA", func(f *Formatter) {
			f.AppendString(e.Area, ElementName)
		}})
	}
	if b := e.BBox; b != nil {
		f.Append(elementFunc{"BBOX", func(f *Formatter) {
			f.AppendNumber(b.South)
			f.AppendNumber(b.West)
			f.AppendNumber(b.North)
			f.AppendNumber(b.East)
		}})
	}
	if v := e.Vertical; v != nil {
		f.Append(elementFunc{"VERTICALEXTENT", func(f *Formatter) {
			f.AppendNumber(v.Minimum)
			f.AppendNumber(v.Maximum)
			f.AppendUnit(v.Unit)
		}})
	}
	if t := e.Temporal; t != nil {
		f.Append(elementFunc{"TIMEEXTENT", func(f *Formatter) {
			f.AppendDate(t.Start)
			f.AppendDate(t.End)
		}})
	}
}

func appendRemarks(f *Formatter, remarks string) {
	if remarks == "" || f.Convention().majorVersion() == 1 {
		return
	}
	f.Append(elementFunc{"REMARK", func(f *Formatter) {
		f.AppendString(remarks, ElementRemarks)
	}})
}

// appendIdentifier writes the identifier element. The ESRI dialect does
// not carry authority elements, so identifiers are omitted whenever the
// preferred authority is ESRI, whether that comes from the convention
// default or from an explicit SetAuthority.
func appendIdentifier(f *Formatter, id *Identifier) {
	if id != nil && f.Authority() != "ESRI" {
		f.Append(id)
	}
}

// methodNames lists the spellings of well-known projection methods under
// the authorities that name them. Each entry maps authority to spelling;
// any of the spellings identifies the entry on lookup.
var methodNames = []map[string]string{
	{
		"EPSG":    "Transverse Mercator",
		"OGC":     "Transverse_Mercator",
		"ESRI":    "Transverse_Mercator",
		"GeoTIFF": "CT_TransverseMercator",
	},
	{
		"EPSG":    "Mercator (variant A)",
		"OGC":     "Mercator_1SP",
		"ESRI":    "Mercator",
		"GeoTIFF": "CT_Mercator",
	},
	{
		"EPSG":    "Lambert Conic Conformal (2SP)",
		"OGC":     "Lambert_Conformal_Conic_2SP",
		"ESRI":    "Lambert_Conformal_Conic",
		"GeoTIFF": "CT_LambertConfConic_2SP",
	},
	{
		"EPSG":    "Polar Stereographic (variant A)",
		"OGC":     "Polar_Stereographic",
		"GeoTIFF": "CT_PolarStereographic",
	},
	{
		"EPSG":    "Albers Equal Area",
		"OGC":     "Albers_Conic_Equal_Area",
		"ESRI":    "Albers",
		"GeoTIFF": "CT_AlbersEqualArea",
	},
}

var methodIndex = func() map[string]int {
	index := make(map[string]int)
	for i, entry := range methodNames {
		for _, spelling := range entry {
			index[methodKey(spelling)] = i
		}
	}
	return index
}()

// methodKey folds a method name to lower-case alphanumerics so that the
// space, underscore and prefix variations of the same method compare
// equal.
func methodKey(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// methodName returns the method under the authority's preferred spelling.
// Methods the table does not know, and authorities with no spelling of
// their own, keep the name as given.
func methodName(name, authority string) string {
	i, ok := methodIndex[methodKey(name)]
	if !ok {
		return name
	}
	if preferred, ok := methodNames[i][authority]; ok {
		return preferred
	}
	return name
}

// greenwichLike reports whether a prime meridian can be omitted from WKT 2
// output, where Greenwich is the default.
func greenwichLike(pm *PrimeMeridian) bool {
	return pm == nil || (pm.Longitude == 0 && strings.EqualFold(pm.Name, "Greenwich"))
}

func (c *GeodeticCRS) FormatTo(f *Formatter) string {
	geocentric := strings.EqualFold(c.CS.Type, "Cartesian")
	f.AppendString(c.Name, ElementName)
	if c.Datum != nil {
		f.Append(c.Datum)
	} else {
		f.SetInvalidWKT(c.keyword(f), errMissingDatum)
	}
	if f.Convention().majorVersion() == 1 {
		pm := c.PrimeMeridian
		if pm == nil {
			pm = Greenwich
		}
		f.Append(pm)
		appendCS(f, c.CS)
		appendIdentifier(f, c.ID)
		if geocentric {
			return "GEOCCS"
		}
		return "GEOGCS"
	}
	if !greenwichLike(c.PrimeMeridian) {
		f.Append(c.PrimeMeridian)
	}
	appendCS(f, c.CS)
	appendExtent(f, c.Extent)
	appendIdentifier(f, c.ID)
	appendRemarks(f, c.Remarks)
	return c.keyword(f)
}

func (c *GeodeticCRS) keyword(f *Formatter) string {
	if strings.EqualFold(c.CS.Type, "Cartesian") {
		if f.Convention().majorVersion() == 1 {
			return "GEOCCS"
		}
		return "GEODCRS"
	}
	if f.Convention().majorVersion() == 1 {
		return "GEOGCS"
	}
	return "GEOGCRS"
}

// baseCRS writes the base of a projected CRS. WKT 2 uses an abridged
// BASEGEOGCRS element without coordinate system; WKT 1 repeats the full
// GEOGCS, which baseCRS is not used for.
type baseCRS struct {
	crs *GeodeticCRS
}

func (b baseCRS) FormatTo(f *Formatter) string {
	c := b.crs
	f.AppendString(c.Name, ElementName)
	if c.Datum != nil {
		f.Append(c.Datum)
	}
	if !greenwichLike(c.PrimeMeridian) {
		f.Append(c.PrimeMeridian)
	}
	if !c.CS.Unit.IsZero() {
		f.AppendUnit(c.CS.Unit)
	}
	appendIdentifier(f, c.ID)
	if strings.EqualFold(c.CS.Type, "Cartesian") {
		return "BASEGEODCRS"
	}
	return "BASEGEOGCRS"
}

func (p Parameter) FormatTo(f *Formatter) string {
	f.AppendString(p.Name, ElementName)
	f.AppendNumber(p.Value)
	if f.Convention().majorVersion() != 1 {
		f.AppendUnit(p.Unit)
		appendIdentifier(f, p.ID)
	}
	return "PARAMETER"
}

func (c *Conversion) FormatTo(f *Formatter) string {
	f.AppendString(c.Name, ElementName)
	f.Append(elementFunc{"METHOD", func(f *Formatter) {
		f.AppendString(methodName(c.Method, f.Authority()), ElementName)
		appendIdentifier(f, c.MethodID)
	}})
	for _, p := range c.Parameters {
		f.Append(p)
	}
	appendIdentifier(f, c.ID)
	return "CONVERSION"
}

func (c *ProjectedCRS) FormatTo(f *Formatter) string {
	f.AppendString(c.Name, ElementName)
	if c.Base == nil {
		f.SetInvalidWKT("PROJCRS", errMissingBase)
	}
	if f.Convention().majorVersion() == 1 {
		if c.Base != nil {
			f.Append(c.Base)
		}
		if conv := c.Conversion; conv != nil {
			method := methodName(conv.Method, f.Authority())
			f.Append(elementFunc{"PROJECTION", func(f *Formatter) {
				f.AppendString(method, ElementName)
			}})
			for _, p := range conv.Parameters {
				f.Append(p)
			}
		}
		appendCS(f, c.CS)
		appendIdentifier(f, c.ID)
		return "PROJCS"
	}
	if c.Base != nil {
		f.Append(baseCRS{c.Base})
	}
	if c.Conversion != nil {
		f.Append(c.Conversion)
	}
	appendCS(f, c.CS)
	appendExtent(f, c.Extent)
	appendIdentifier(f, c.ID)
	appendRemarks(f, c.Remarks)
	return "PROJCRS"
}

func (c *VerticalCRS) FormatTo(f *Formatter) string {
	f.AppendString(c.Name, ElementName)
	if c.Datum != nil {
		f.Append(c.Datum)
	} else {
		f.SetInvalidWKT("VERTCRS", errMissingDatum)
	}
	appendCS(f, c.CS)
	if f.Convention().majorVersion() == 1 {
		appendIdentifier(f, c.ID)
		return "VERT_CS"
	}
	appendExtent(f, c.Extent)
	appendIdentifier(f, c.ID)
	appendRemarks(f, c.Remarks)
	return "VERTCRS"
}

func (c *CompoundCRS) FormatTo(f *Formatter) string {
	f.AppendString(c.Name, ElementName)
	for _, component := range c.Components {
		f.Append(component)
	}
	if f.Convention().majorVersion() == 1 {
		appendIdentifier(f, c.ID)
		return "COMPD_CS"
	}
	appendExtent(f, c.Extent)
	appendIdentifier(f, c.ID)
	appendRemarks(f, c.Remarks)
	return "COMPOUNDCRS"
}

// The math transform elements exist only in the version 1 grammar;
// writing them under WKT 2 produces non-standard text.

func (t *ParamTransform) FormatTo(f *Formatter) string {
	if f.Convention().majorVersion() != 1 {
		f.SetInvalidWKT("PARAM_MT", errTransformWKT2)
	}
	f.AppendString(t.Method, ElementName)
	for _, p := range t.Parameters {
		f.Append(p)
	}
	return "PARAM_MT"
}

func (t *InverseTransform) FormatTo(f *Formatter) string {
	if f.Convention().majorVersion() != 1 {
		f.SetInvalidWKT("INVERSE_MT", errTransformWKT2)
	}
	if t.Transform != nil {
		f.Append(t.Transform)
	}
	return "INVERSE_MT"
}

func (t *ConcatTransform) FormatTo(f *Formatter) string {
	if f.Convention().majorVersion() != 1 {
		f.SetInvalidWKT("CONCAT_MT", errTransformWKT2)
	}
	for _, step := range t.Steps {
		f.Append(step)
	}
	return "CONCAT_MT"
}
