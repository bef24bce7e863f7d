package apub

import "fmt"

// Shape records how a single-or-many field was written on the wire.
type Shape int

const (
	// ShapeUnset means the field was absent from the payload.
	ShapeUnset Shape = iota
	// ShapeSingular means the field held one bare value.
	ShapeSingular
	// ShapePlural means the field held an array of values.
	ShapePlural
)

// List holds a field that producers write either as one value or as an
// ordered sequence of values. It normalises both to a slice while
// remembering which shape was observed, so that re-serialisation can emit
// the shape the producer used, and so that an absent field stays
// distinguishable from a present-but-empty one.
//
// The zero List is unset.
type List[T any] struct {
	shape  Shape
	values []T
}

// One returns a List holding a single bare value.
func One[T any](v T) List[T] {
	return List[T]{shape: ShapeSingular, values: []T{v}}
}

// Many returns a List holding a sequence of values, preserving their order.
func Many[T any](values ...T) List[T] {
	return List[T]{shape: ShapePlural, values: values}
}

// IsSet reports whether the field was present at all.
func (l List[T]) IsSet() bool { return l.shape != ShapeUnset }

// Singular reports whether the field arrived as one bare value.
func (l List[T]) Singular() bool { return l.shape == ShapeSingular }

// Shape returns the observed wire shape.
func (l List[T]) Shape() Shape { return l.shape }

// Values returns the normalised sequence. It is empty when the field was
// unset or held an empty array.
func (l List[T]) Values() []T { return l.values }

// Len returns the number of values.
func (l List[T]) Len() int { return len(l.values) }

// First returns the first value, if there is one.
func (l List[T]) First() (T, bool) {
	if len(l.values) == 0 {
		var zero T
		return zero, false
	}
	return l.values[0], true
}

// Ref holds a field that producers write either as a fully embedded entity
// or as a bare identifier string naming one. Resolving a reference to the
// entity it names is the caller's concern.
//
// The zero Ref is unset.
type Ref[T any] struct {
	id    string
	value *T
}

// RefTo returns a Ref naming an entity by identifier only.
func RefTo[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Embed returns a Ref carrying a fully embedded entity. The identifier is
// passed separately because not every embeddable type exposes one.
func Embed[T any](id string, value *T) Ref[T] {
	return Ref[T]{id: id, value: value}
}

// IsSet reports whether the field was present at all.
func (r Ref[T]) IsSet() bool { return r.id != "" || r.value != nil }

// ID returns the identifier of the entity, whether embedded or referenced.
// It is empty for an unset Ref and for an embedded entity with no id.
func (r Ref[T]) ID() string { return r.id }

// Embedded returns the embedded entity when the field held one in full.
func (r Ref[T]) Embedded() (*T, bool) { return r.value, r.value != nil }

// Reference returns the identifier when the field held only a reference.
func (r Ref[T]) Reference() (string, bool) {
	if r.value != nil {
		return "", false
	}
	return r.id, r.id != ""
}

// fromAnyFunc converts one decoded JSON value into a T. It reports false
// when the value is unusable; any diagnostics about the conversion are
// recorded against field.
type fromAnyFunc[T any] func(field string, v any, ds *Diagnostics) (T, bool)

// listFromAny normalises a single-or-many field. An absent field yields the
// unset List. A bare value yields a singular List. An array yields a plural
// List whose unusable elements are dropped with a diagnostic. A bare value
// of the wrong type yields the unset List with a diagnostic, per the
// tolerant policy for optional fields.
func listFromAny[T any](props map[string]any, field, expected string, from fromAnyFunc[T], ds *Diagnostics) List[T] {
	v, ok := props[field]
	if !ok || v == nil {
		return List[T]{}
	}
	if items, ok := v.([]any); ok {
		values := make([]T, 0, len(items))
		for i, item := range items {
			elem := fmt.Sprintf("%s[%d]", field, i)
			t, ok := from(elem, item, ds)
			if !ok {
				ds.add(elem, &FieldTypeError{Field: elem, Expected: expected})
				continue
			}
			values = append(values, t)
		}
		return Many(values...)
	}
	t, ok := from(field, v, ds)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: expected})
		return List[T]{}
	}
	return One(t)
}

// listAsAny converts a List back to its wire form: the bare converted value
// when the field arrived singular, an array otherwise.
func listAsAny[T any](l List[T], conv func(T) any) any {
	if l.Singular() && len(l.values) == 1 {
		return conv(l.values[0])
	}
	values := make([]any, 0, len(l.values))
	for _, v := range l.values {
		values = append(values, conv(v))
	}
	return values
}

// embedFunc extracts a T from an object tree, returning the value and its
// identifier.
type embedFunc[T any] func(field string, props map[string]any, ds *Diagnostics) (*T, string)

// refFromAny normalises an embedded-or-reference value: a bare string
// becomes a reference, an object becomes an embedded T. Any other shape
// reports false.
func refFromAny[T any](field string, v any, embed embedFunc[T], ds *Diagnostics) (Ref[T], bool) {
	switch v := v.(type) {
	case string:
		return RefTo[T](v), true
	case map[string]any:
		value, id := embed(field, v, ds)
		return Ref[T]{id: id, value: value}, true
	default:
		return Ref[T]{}, false
	}
}

// optRef extracts an optional embedded-or-reference field.
func optRef[T any](props map[string]any, field, expected string, embed embedFunc[T], ds *Diagnostics) Ref[T] {
	v, ok := props[field]
	if !ok || v == nil {
		return Ref[T]{}
	}
	r, ok := refFromAny(field, v, embed, ds)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: expected})
		return Ref[T]{}
	}
	return r
}

// refList extracts a field holding one or many embedded-or-reference
// values, such as attributedTo.
func refList[T any](props map[string]any, field, expected string, embed embedFunc[T], ds *Diagnostics) List[Ref[T]] {
	from := func(field string, v any, ds *Diagnostics) (Ref[T], bool) {
		return refFromAny(field, v, embed, ds)
	}
	return listFromAny(props, field, expected, from, ds)
}

// refAsAny converts a Ref back to its wire form: the identifier string for
// a reference, the converted object for an embedded entity.
func refAsAny[T any](r Ref[T], conv func(*T) map[string]any) any {
	if v, ok := r.Embedded(); ok {
		return conv(v)
	}
	return r.id
}

// stringList extracts a single-or-many field of plain strings, such as the
// to and cc audiences.
func stringList(props map[string]any, field string, ds *Diagnostics) List[string] {
	from := func(field string, v any, ds *Diagnostics) (string, bool) {
		return stringFromAny(v)
	}
	return listFromAny(props, field, "string", from, ds)
}
