package apub

// Tag models the members of an entity's tag property: hashtags, mentions,
// custom emoji and, despite the name, whatever else producers put there.
type Tag struct {
	Context *Context
	Type    List[string]
	ID      string  // alias: href
	Name    *string // alias: tag
	Icon    List[Ref[Image]]

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var tagKeys = keySet("@context", "type", "id", "href", "name", "tag", "icon", "image")

func extractTag(field string, props map[string]any, ds *Diagnostics) (*Tag, string) {
	t := &Tag{
		Context: contextFromProps(props, ds),
		Type:    stringList(props, "type", ds),
		Name:    optString(props, "name", ds),
		Icon:    imageList(props, "icon", ds),
		Extra:   extraFields(props, tagKeys),
	}
	if id := optString(props, "id", ds); id != nil {
		t.ID = *id
	} else if href := optString(props, "href", ds); href != nil {
		t.ID = *href
	}
	if t.Name == nil {
		t.Name = optString(props, "tag", ds)
	}
	if !t.Icon.IsSet() {
		t.Icon = imageList(props, "image", ds)
	}
	return t, t.ID
}

func tagFromAny(field string, v any, ds *Diagnostics) (*Tag, bool) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, false
	}
	t, _ := extractTag(field, props, ds)
	return t, true
}

// tagList extracts a tag property holding one tag object or a list of
// them.
func tagList(props map[string]any, field string, ds *Diagnostics) List[*Tag] {
	return listFromAny(props, field, "tag object", tagFromAny, ds)
}

func (t *Tag) EntityID() string { return t.ID }

func (t *Tag) EntityTypes() []string { return t.Type.Values() }

func (t *Tag) AsMap() map[string]any {
	m := make(map[string]any)
	if t.Context != nil {
		m["@context"] = t.Context.asAny()
	}
	if t.Type.IsSet() {
		m["type"] = listAsAny(t.Type, func(s string) any { return s })
	}
	if t.ID != "" {
		m["id"] = t.ID
	}
	put(m, "name", t.Name)
	if t.Icon.IsSet() {
		m["icon"] = listAsAny(t.Icon, func(r Ref[Image]) any {
			return refAsAny(r, (*Image).AsMap)
		})
	}
	for k, v := range t.Extra {
		m[k] = v
	}
	return m
}
