package apub

import (
	"bytes"
	"io"
)

// Result is what dispatch produces for one payload: every typed
// interpretation that could be extracted, plus the non-fatal diagnostics
// collected along the way.
type Result struct {
	// Entities holds one entry per recognized kind family the payload
	// claimed, in the order the type tags appeared. A payload with no
	// recognized tag yields a single generic *Object.
	Entities []Entity

	// Diagnostics records malformed optional fields, unrecognized type
	// tags, and kinds whose extraction failed.
	Diagnostics Diagnostics
}

// First returns the first extracted entity. Dispatch never returns a
// Result with no entities.
func (r *Result) First() Entity {
	return r.Entities[0]
}

// Decode parses a raw JSON payload and dispatches it to every entity
// schema it matches. See Dispatch for the dispatch rules.
func Decode(data []byte) (*Result, error) {
	return DecodeFrom(bytes.NewReader(data))
}

// DecodeFrom is Decode reading from r.
func DecodeFrom(r io.Reader) (*Result, error) {
	v, err := decodeTree(r)
	if err != nil {
		return nil, err
	}
	return Dispatch(v)
}

// Dispatch inspects a decoded value's type tags and extracts a typed
// entity for every recognized kind family the payload claims. A payload
// may legitimately claim several kinds at once; rather than picking a
// winner, all interpretations are returned and callers select by
// capability. Unrecognized tags are reported as diagnostics, and a payload
// with no recognized tag at all still yields a generic Object. Dispatch
// fails only when the value is not an object, or when every claimed kind's
// schema was unsatisfiable.
func Dispatch(v any) (*Result, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, ErrNotAnObject
	}

	var ds Diagnostics
	tags := stringList(props, "type", &ds)

	var entities []Entity
	var kindErr error
	seen := make(map[string]bool)
	extract := func(family string, fn func() (Entity, error)) {
		if seen[family] {
			return
		}
		seen[family] = true
		e, err := fn()
		if err != nil {
			ds.add("type", err)
			if kindErr == nil {
				kindErr = err
			}
			return
		}
		entities = append(entities, e)
	}

	for _, tag := range tags.Values() {
		switch {
		case IsActivityType(tag):
			extract("activity", func() (Entity, error) {
				return extractActivity(props, &ds), nil
			})
		case IsActorType(tag):
			extract("actor", func() (Entity, error) {
				return extractActor(props, &ds), nil
			})
		case IsCollectionPageType(tag):
			extract("collectionPage", func() (Entity, error) {
				return extractCollectionPage(props, &ds), nil
			})
		case IsCollectionType(tag):
			extract("collection", func() (Entity, error) {
				return extractCollection(props, collectionKeys, &ds), nil
			})
		case tag == TypeLink:
			extract("link", func() (Entity, error) {
				return extractLink(props, &ds)
			})
		case IsTagType(tag):
			extract("tag", func() (Entity, error) {
				t, _ := extractTag("", props, &ds)
				return t, nil
			})
		case IsContentType(tag):
			extract("object", func() (Entity, error) {
				return extractObjectProps(props, objectKeys, &ds), nil
			})
		default:
			ds.add("type", &UnrecognizedKindError{Kind: tag})
		}
	}

	if len(entities) == 0 {
		if kindErr != nil {
			// every claimed kind failed its schema
			return nil, kindErr
		}
		if _, present := props["type"]; !present {
			ds.add("type", &MissingFieldError{Field: "type"})
		}
		entities = append(entities, extractObjectProps(props, objectKeys, &ds))
	}

	return &Result{Entities: entities, Diagnostics: ds}, nil
}
