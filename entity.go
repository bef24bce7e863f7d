package apub

import (
	"errors"
	"io"

	"github.com/go-json-experiment/json"
)

// An Entity is one typed value decoded from a payload: an Object, Actor,
// Activity, Collection, CollectionPage, Link or Tag.
type Entity interface {
	// EntityID returns the entity's identifier, or "" for an anonymous
	// entity.
	EntityID() string
	// EntityTypes returns the type tags the payload claimed, in payload
	// order.
	EntityTypes() []string
	// AsMap returns the entity in wire form, including any preserved
	// unrecognized fields, ready for serialisation.
	AsMap() map[string]any
}

// Marshal serialises an entity back to JSON. Unrecognized fields preserved
// during extraction are re-emitted, so a decoded payload round-trips
// without losing them.
func Marshal(e Entity) ([]byte, error) {
	return json.Marshal(e.AsMap())
}

// MarshalIndent is Marshal with indentation for readability.
func MarshalIndent(e Entity) ([]byte, error) {
	return json.MarshalOptions{}.Marshal(json.EncodeOptions{
		Indent: "  ",
	}, e.AsMap())
}

// decodeTree parses raw JSON into a generic value tree.
func decodeTree(r io.Reader) (any, error) {
	var v any
	if err := json.UnmarshalFull(r, &v); err != nil {
		var serr *json.SyntacticError
		if errors.As(err, &serr) {
			return nil, &SyntaxError{Offset: serr.ByteOffset, err: err}
		}
		return nil, &SyntaxError{err: err}
	}
	return v, nil
}

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func union(set map[string]bool, keys ...string) map[string]bool {
	out := make(map[string]bool, len(set)+len(keys))
	for k := range set {
		out[k] = true
	}
	for _, k := range keys {
		out[k] = true
	}
	return out
}

// extraFields collects the keys of props that schema does not know about,
// verbatim, so that re-serialisation can restore them. Returns nil when
// there are none.
func extraFields(props map[string]any, known map[string]bool) map[string]any {
	var extra map[string]any
	for k, v := range props {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra
}

// put sets key in m unless the value is nil.
func put(m map[string]any, key string, v any) {
	switch v := v.(type) {
	case nil:
		return
	case *string:
		if v != nil {
			m[key] = *v
		}
	case *bool:
		if v != nil {
			m[key] = *v
		}
	case *int:
		if v != nil {
			m[key] = *v
		}
	default:
		m[key] = v
	}
}
