package wkt

// Formattable is implemented by objects that can describe themselves in
// Well-Known Text. FormatTo writes the content of the element (the part
// between the brackets) to the formatter and returns the keyword to put in
// front of the opening bracket. The returned keyword may depend on the
// formatter's convention, for example ELLIPSOID under WKT 2 but SPHEROID
// under WKT 1.
//
// Implementations should report objects that have no representation under
// the current convention with Formatter.SetInvalidWKT rather than by
// returning an error; the formatter turns that flag into either a hard
// error or a placeholder depending on how it is used.
type Formattable interface {
	FormatTo(f *Formatter) string
}
