package apub

// A ContextItem is one entry of a payload's @context: either an IRI naming
// a schema document, or an inline mapping of term definitions. Exactly one
// of the two fields is populated.
type ContextItem struct {
	IRI   string
	Terms map[string]any
}

func (ci ContextItem) matchesIRI(iri string) bool {
	return ci.IRI != "" && ci.IRI == iri
}

func (ci ContextItem) hasTerm(name string) bool {
	_, ok := ci.Terms[name]
	return ok
}

// Context models the @context property of a payload: a single item or a
// list of items. Lookups are by key presence only; this is not a JSON-LD
// processor, but in practice checking which terms a payload declares works
// well enough.
type Context struct {
	entries List[ContextItem]
}

// Entries returns the context items in payload order.
func (c *Context) Entries() []ContextItem {
	if c == nil {
		return nil
	}
	return c.entries.Values()
}

// MatchesIRI reports whether any entry is exactly the given IRI. Its main
// use is checking for references to linked schemas such as SecurityContext.
func (c *Context) MatchesIRI(iri string) bool {
	if c == nil {
		return false
	}
	for _, e := range c.entries.Values() {
		if e.matchesIRI(iri) {
			return true
		}
	}
	return false
}

// HasTerm reports whether any entry's term definitions declare name. A term
// could be declared under a different name by an exotic context, so this is
// best-effort.
func (c *Context) HasTerm(name string) bool {
	if c == nil {
		return false
	}
	for _, e := range c.entries.Values() {
		if e.hasTerm(name) {
			return true
		}
	}
	return false
}

func contextItemFromAny(field string, v any, ds *Diagnostics) (ContextItem, bool) {
	switch v := v.(type) {
	case string:
		return ContextItem{IRI: v}, true
	case map[string]any:
		return ContextItem{Terms: v}, true
	default:
		return ContextItem{}, false
	}
}

// contextFromProps extracts the @context property, or nil when absent.
func contextFromProps(props map[string]any, ds *Diagnostics) *Context {
	entries := listFromAny(props, "@context", "IRI or term mapping", contextItemFromAny, ds)
	if !entries.IsSet() {
		return nil
	}
	return &Context{entries: entries}
}

func (c *Context) asAny() any {
	return listAsAny(c.entries, func(ci ContextItem) any {
		if ci.Terms != nil {
			return ci.Terms
		}
		return ci.IRI
	})
}
