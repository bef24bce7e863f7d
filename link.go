package apub

// Link is a qualified reference to a URL: the target itself plus optional
// media type, display name and relation. Fields other than Href are rarely
// present.
type Link struct {
	Context   *Context
	Type      List[string]
	Href      string
	MediaType *string
	Name      *string
	Rel       List[string]

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var linkKeys = keySet("@context", "type", "href", "mediaType", "name", "rel")

// ExtractLink extracts a Link from a decoded value. Href is the one
// strictly required field; a Link without a target is unusable.
func ExtractLink(v any) (*Link, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	l, err := extractLink(props, &ds)
	if err != nil {
		return nil, ds, err
	}
	return l, ds, nil
}

func extractLink(props map[string]any, ds *Diagnostics) (*Link, error) {
	v, ok := props["href"]
	if !ok || v == nil {
		return nil, &MissingFieldError{Field: "href"}
	}
	href, ok := stringFromAny(v)
	if !ok {
		return nil, &FieldTypeError{Field: "href", Expected: "string"}
	}
	return &Link{
		Context:   contextFromProps(props, ds),
		Type:      stringList(props, "type", ds),
		Href:      href,
		MediaType: optString(props, "mediaType", ds),
		Name:      optString(props, "name", ds),
		Rel:       stringList(props, "rel", ds),
		Extra:     extraFields(props, linkKeys),
	}, nil
}

// linkEmbed adapts link extraction to the embedded-or-reference shape used
// by the url property. An embedded link object without href is tolerated
// there; it decodes as a link with an empty target plus a diagnostic.
func linkEmbed(field string, props map[string]any, ds *Diagnostics) (*Link, string) {
	l, err := extractLink(props, ds)
	if err != nil {
		ds.add(field, err)
		l = &Link{
			Context:   contextFromProps(props, ds),
			Type:      stringList(props, "type", ds),
			MediaType: optString(props, "mediaType", ds),
			Name:      optString(props, "name", ds),
			Rel:       stringList(props, "rel", ds),
			Extra:     extraFields(props, linkKeys),
		}
	}
	return l, l.Href
}

// linkList extracts a field holding bare URLs, link objects, or a list of
// either, such as the url property.
func linkList(props map[string]any, field string, ds *Diagnostics) List[Ref[Link]] {
	return refList(props, field, "link or URL", linkEmbed, ds)
}

func (l *Link) EntityID() string { return l.Href }

func (l *Link) EntityTypes() []string { return l.Type.Values() }

func (l *Link) AsMap() map[string]any {
	m := make(map[string]any)
	if l.Context != nil {
		m["@context"] = l.Context.asAny()
	}
	if l.Type.IsSet() {
		m["type"] = listAsAny(l.Type, func(s string) any { return s })
	}
	if l.Href != "" {
		m["href"] = l.Href
	}
	put(m, "mediaType", l.MediaType)
	put(m, "name", l.Name)
	if l.Rel.IsSet() {
		m["rel"] = listAsAny(l.Rel, func(s string) any { return s })
	}
	for k, v := range l.Extra {
		m[k] = v
	}
	return m
}
