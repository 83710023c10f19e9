package wkt

import (
	"errors"
	"fmt"
)

// Causes attached to SetInvalidWKT reports when an object graph is
// structurally incomplete or uses elements absent from the target grammar.
var (
	errMissingEllipsoid = errors.New("the datum has no ellipsoid")
	errMissingDatum     = errors.New("the coordinate reference system has no datum")
	errMissingBase      = errors.New("the projected system has no base geographic system")
	errTransformWKT2    = errors.New("math transforms have no representation in version 2 of the format")
)

// ParseError reports a hard failure while reading WKT text: unbalanced
// brackets, an unparsable token, or a recognized element whose content is
// invalid. Offset is the index into the input at or after the last
// successfully consumed character.
type ParseError struct {
	Text   string
	Offset int
	Msg    string
	Cause  error
}

func (e *ParseError) Error() string {
	near := e.Text[min(e.Offset, len(e.Text)):]
	if len(near) > 20 {
		near = near[:20] + "…"
	}
	if near == "" {
		return fmt.Sprintf("wkt: %s at offset %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("wkt: %s at offset %d near %q", e.Msg, e.Offset, near)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// UnformattableError is returned by the strict formatting entry points when
// an object in the graph has no standard WKT representation.
type UnformattableError struct {
	Element string
	Cause   error
}

func (e *UnformattableError) Error() string {
	return fmt.Sprintf("wkt: %q can not be formatted as a standard well-known text", e.Element)
}

func (e *UnformattableError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError is returned by Format.Format when the given value is
// neither a formattable element nor a plain WKT value.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("wkt: can not format value of type %T", e.Value)
}
