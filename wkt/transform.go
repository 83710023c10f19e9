package wkt

// MathTransform is a coordinate operation described directly by its
// parameters rather than by CRS definitions. It covers the legacy
// PARAM_MT, INVERSE_MT and CONCAT_MT elements.
type MathTransform interface {
	Formattable
	transform()
}

// ParamTransform is a parameterized transform, e.g.
// PARAM_MT["Affine", PARAMETER["num_row",3], ...].
type ParamTransform struct {
	Method     string
	Parameters []Parameter
}

// InverseTransform is the inverse of another transform.
type InverseTransform struct {
	Transform MathTransform
}

// ConcatTransform applies its steps in order.
type ConcatTransform struct {
	Steps []MathTransform
}

func (*ParamTransform) transform()   {}
func (*InverseTransform) transform() {}
func (*ConcatTransform) transform()  {}
