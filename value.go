package apub

import "time"

// Tolerant accessors over the decoded JSON tree. Producers get these fields
// wrong often enough that every optional field goes through one of the opt
// helpers, which record a diagnostic and report the field unset instead of
// failing the extraction.

func stringFromAny(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func boolFromAny(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func intFromAny(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		// shakes fist at json number type
		return int(v), true
	}
	return 0, false
}

func timeFromAny(v any) (time.Time, bool) {
	switch v := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339, v)
		return t, err == nil
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}
}

func mapFromAny(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func sliceFromAny(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// optString returns the named field as *string, or nil when the field is
// absent or null. A present value of the wrong type records a diagnostic.
func optString(props map[string]any, field string, ds *Diagnostics) *string {
	v, ok := props[field]
	if !ok || v == nil {
		return nil
	}
	s, ok := stringFromAny(v)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: "string"})
		return nil
	}
	return &s
}

func optBool(props map[string]any, field string, ds *Diagnostics) *bool {
	v, ok := props[field]
	if !ok || v == nil {
		return nil
	}
	b, ok := boolFromAny(v)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: "boolean"})
		return nil
	}
	return &b
}

func optInt(props map[string]any, field string, ds *Diagnostics) *int {
	v, ok := props[field]
	if !ok || v == nil {
		return nil
	}
	i, ok := intFromAny(v)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: "number"})
		return nil
	}
	return &i
}

func optTime(props map[string]any, field string, ds *Diagnostics) *time.Time {
	v, ok := props[field]
	if !ok || v == nil {
		return nil
	}
	t, ok := timeFromAny(v)
	if !ok {
		ds.add(field, &FieldTypeError{Field: field, Expected: "RFC3339 timestamp"})
		return nil
	}
	return &t
}

// optStringMap returns the named field as a string-to-string map. Values of
// other types inside the map are skipped with a diagnostic. The rare
// producer that sends the map as a one-element array is tolerated; the
// element becomes a "default" entry.
func optStringMap(props map[string]any, field string, ds *Diagnostics) map[string]string {
	v, ok := props[field]
	if !ok || v == nil {
		return nil
	}
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, item := range v {
			s, ok := stringFromAny(item)
			if !ok {
				ds.add(field+"."+k, &FieldTypeError{Field: field + "." + k, Expected: "string"})
				continue
			}
			out[k] = s
		}
		return out
	case []any:
		if len(v) == 0 {
			return nil
		}
		s, ok := stringFromAny(v[0])
		if !ok {
			ds.add(field, &FieldTypeError{Field: field, Expected: "map of strings"})
			return nil
		}
		return map[string]string{"default": s}
	default:
		ds.add(field, &FieldTypeError{Field: field, Expected: "map of strings"})
		return nil
	}
}
