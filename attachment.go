package apub

// Attachment models the members of an entity's attachment property. It
// comes in many forms: media documents, and the PropertyValue name/value
// pairs Mastodon uses for profile metadata.
type Attachment struct {
	Type      List[string]
	Name      *string
	Content   *string // alias: value
	URL       *string // alias: href
	MediaType *string

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var attachmentKeys = keySet("type", "name", "content", "value", "url", "href", "mediaType")

func extractAttachment(field string, props map[string]any, ds *Diagnostics) (*Attachment, string) {
	a := &Attachment{
		Type:      stringList(props, "type", ds),
		Name:      optString(props, "name", ds),
		Content:   optString(props, "content", ds),
		URL:       optString(props, "url", ds),
		MediaType: optString(props, "mediaType", ds),
		Extra:     extraFields(props, attachmentKeys),
	}
	if a.Content == nil {
		a.Content = optString(props, "value", ds)
	}
	if a.URL == nil {
		a.URL = optString(props, "href", ds)
	}
	if a.URL == nil {
		return a, ""
	}
	return a, *a.URL
}

func attachmentFromAny(field string, v any, ds *Diagnostics) (*Attachment, bool) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, false
	}
	a, _ := extractAttachment(field, props, ds)
	return a, true
}

// attachmentList extracts an attachment property holding one attachment or
// a list of them.
func attachmentList(props map[string]any, field string, ds *Diagnostics) List[*Attachment] {
	return listFromAny(props, field, "attachment object", attachmentFromAny, ds)
}

// IsPropertyValue reports whether the attachment is a PropertyValue
// name/value pair.
func (a *Attachment) IsPropertyValue() bool {
	for _, t := range a.Type.Values() {
		if t == TypePropertyValue {
			return true
		}
	}
	return false
}

func (a *Attachment) AsMap() map[string]any {
	m := make(map[string]any)
	if a.Type.IsSet() {
		m["type"] = listAsAny(a.Type, func(s string) any { return s })
	}
	put(m, "name", a.Name)
	put(m, "content", a.Content)
	put(m, "url", a.URL)
	put(m, "mediaType", a.MediaType)
	for k, v := range a.Extra {
		m[k] = v
	}
	return m
}
