package apub

import (
	"errors"
	"fmt"
)

// ErrNotAnObject is returned when the top level of a payload is not a JSON
// object, for example a bare array or string. Nothing can be extracted from
// such a payload.
var ErrNotAnObject = errors.New("apub: payload is not an object")

// SyntaxError reports that the input was not well formed JSON. Offset is the
// byte offset at which decoding failed, when the underlying decoder reported
// one.
type SyntaxError struct {
	Offset int64
	err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("apub: invalid json at offset %d: %v", e.Offset, e.err)
}

func (e *SyntaxError) Unwrap() error { return e.err }

// MissingFieldError reports a strictly required field that was absent. It is
// fatal only for the entity kind whose schema requires the field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("apub: missing required field %q", e.Field)
}

// FieldTypeError reports a field whose value had the wrong shape, for
// example a number where a string was expected. For optional fields it is
// recorded as a diagnostic and the field is left unset; it surfaces as an
// error only when the field is required.
type FieldTypeError struct {
	Field    string
	Expected string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("apub: field %q is not a %s", e.Field, e.Expected)
}

// UnrecognizedKindError reports a type tag this package has no schema for.
// It is always a diagnostic, never a hard failure: the payload still yields
// a generic Object.
type UnrecognizedKindError struct {
	Kind string
}

func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("apub: unrecognized kind %q", e.Kind)
}

// A Diagnostic records a non-fatal problem observed while extracting an
// entity: a malformed optional field, an unknown type tag, and so on.
type Diagnostic struct {
	Field string
	Err   error
}

func (d Diagnostic) Error() string {
	return d.Err.Error()
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Diagnostics is the ordered list of non-fatal problems collected during a
// single extraction.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(field string, err error) {
	*ds = append(*ds, Diagnostic{Field: field, Err: err})
}

// For returns the diagnostics recorded for the named field.
func (ds Diagnostics) For(field string) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds {
		if d.Field == field {
			out = append(out, d)
		}
	}
	return out
}
