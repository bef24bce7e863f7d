package apub

import "time"

// Object is the base entity most fediverse payloads are represented as:
// notes, articles, media, tombstones. Every other entity kind builds on it.
// All fields except the type tags are optional; an absent field stays nil
// or unset rather than defaulting.
type Object struct {
	Context      *Context
	ID           string
	Type         List[string]
	Name         *string
	Summary      *string
	Content      *string
	ContentMap   map[string]string
	MediaType    *string
	Published    *time.Time
	Updated      *time.Time
	URL          List[Ref[Link]]
	AttributedTo List[Ref[Actor]]
	To           List[string]
	CC           List[string]
	InReplyTo    Ref[Object]
	Sensitive    *bool
	Indexable    *bool
	Discoverable *bool
	SearchableBy List[string]
	Tag          List[*Tag]
	Attachment   List[*Attachment]
	Icon         List[Ref[Image]] // alias: image

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var objectKeys = keySet(
	"@context", "id", "type", "name", "summary", "content", "contentMap",
	"mediaType", "published", "updated", "url", "attributedTo", "to", "cc",
	"inReplyTo", "sensitive", "indexable", "discoverable", "searchableBy",
	"tag", "attachment", "icon", "image",
)

// ExtractObject extracts a generic Object from a decoded value. It fails
// only when the value is not an object at all; every field-level problem is
// absorbed into the returned diagnostics.
func ExtractObject(v any) (*Object, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	o := extractObjectProps(props, objectKeys, &ds)
	return o, ds, nil
}

// extractObjectProps populates the base fields shared by every
// Object-derived kind. known is the full key schema of the concrete kind,
// used to decide which fields are preserved as extras.
func extractObjectProps(props map[string]any, known map[string]bool, ds *Diagnostics) *Object {
	o := &Object{
		Context:      contextFromProps(props, ds),
		Type:         stringList(props, "type", ds),
		Name:         optString(props, "name", ds),
		Summary:      optString(props, "summary", ds),
		Content:      optString(props, "content", ds),
		ContentMap:   optStringMap(props, "contentMap", ds),
		MediaType:    optString(props, "mediaType", ds),
		Published:    optTime(props, "published", ds),
		Updated:      optTime(props, "updated", ds),
		URL:          linkList(props, "url", ds),
		AttributedTo: actorRefList(props, "attributedTo", ds),
		To:           stringList(props, "to", ds),
		CC:           stringList(props, "cc", ds),
		InReplyTo:    optRef(props, "inReplyTo", "object or URL", objectEmbed, ds),
		Sensitive:    optBool(props, "sensitive", ds),
		Indexable:    optBool(props, "indexable", ds),
		Discoverable: optBool(props, "discoverable", ds),
		SearchableBy: stringList(props, "searchableBy", ds),
		Tag:          tagList(props, "tag", ds),
		Attachment:   attachmentList(props, "attachment", ds),
		Icon:         imageList(props, "icon", ds),
		Extra:        extraFields(props, known),
	}
	if id := optString(props, "id", ds); id != nil {
		o.ID = *id
	}
	if !o.Icon.IsSet() {
		o.Icon = imageList(props, "image", ds)
	}
	return o
}

// objectEmbed adapts object extraction to the embedded-or-reference shape.
func objectEmbed(field string, props map[string]any, ds *Diagnostics) (*Object, string) {
	o := extractObjectProps(props, objectKeys, ds)
	return o, o.ID
}

func (o *Object) EntityID() string { return o.ID }

func (o *Object) EntityTypes() []string { return o.Type.Values() }

func (o *Object) AsMap() map[string]any { return o.baseMap() }

func (o *Object) baseMap() map[string]any {
	m := make(map[string]any)
	if o.Context != nil {
		m["@context"] = o.Context.asAny()
	}
	if o.ID != "" {
		m["id"] = o.ID
	}
	if o.Type.IsSet() {
		m["type"] = listAsAny(o.Type, func(s string) any { return s })
	}
	put(m, "name", o.Name)
	put(m, "summary", o.Summary)
	put(m, "content", o.Content)
	if o.ContentMap != nil {
		m["contentMap"] = o.ContentMap
	}
	put(m, "mediaType", o.MediaType)
	if o.Published != nil {
		m["published"] = o.Published.Format(time.RFC3339Nano)
	}
	if o.Updated != nil {
		m["updated"] = o.Updated.Format(time.RFC3339Nano)
	}
	if o.URL.IsSet() {
		m["url"] = listAsAny(o.URL, func(r Ref[Link]) any {
			return refAsAny(r, (*Link).AsMap)
		})
	}
	if o.AttributedTo.IsSet() {
		m["attributedTo"] = listAsAny(o.AttributedTo, func(r Ref[Actor]) any {
			return refAsAny(r, (*Actor).AsMap)
		})
	}
	if o.To.IsSet() {
		m["to"] = listAsAny(o.To, func(s string) any { return s })
	}
	if o.CC.IsSet() {
		m["cc"] = listAsAny(o.CC, func(s string) any { return s })
	}
	if o.InReplyTo.IsSet() {
		m["inReplyTo"] = refAsAny(o.InReplyTo, (*Object).AsMap)
	}
	put(m, "sensitive", o.Sensitive)
	put(m, "indexable", o.Indexable)
	put(m, "discoverable", o.Discoverable)
	if o.SearchableBy.IsSet() {
		m["searchableBy"] = listAsAny(o.SearchableBy, func(s string) any { return s })
	}
	if o.Tag.IsSet() {
		m["tag"] = listAsAny(o.Tag, func(t *Tag) any { return t.AsMap() })
	}
	if o.Attachment.IsSet() {
		m["attachment"] = listAsAny(o.Attachment, func(a *Attachment) any { return a.AsMap() })
	}
	if o.Icon.IsSet() {
		m["icon"] = listAsAny(o.Icon, func(r Ref[Image]) any {
			return refAsAny(r, (*Image).AsMap)
		})
	}
	for k, v := range o.Extra {
		m[k] = v
	}
	return m
}

// Public reports whether the object is addressed to the world, either
// directly or via cc.
func (o *Object) Public() bool {
	for _, recipient := range o.To.Values() {
		if recipient == PublicAudience {
			return true
		}
	}
	for _, recipient := range o.CC.Values() {
		if recipient == PublicAudience {
			return true
		}
	}
	return false
}

// URLString returns any URL declared in the url property, preferring the
// first. Reports false when the property is unset or holds no usable
// target.
func (o *Object) URLString() (string, bool) {
	for _, r := range o.URL.Values() {
		if id := r.ID(); id != "" {
			return id, true
		}
	}
	return "", false
}

// ContentByLanguage returns a language-to-text view of the object's
// content. When a contentMap is present its entries are used; otherwise
// content (or name, for objects without content) is returned under the
// "default" key. The summary, when present, is prepended as a paragraph.
// clean, if non-nil, is applied to each value; callers use it to strip or
// sanitise markup.
func (o *Object) ContentByLanguage(clean func(string) string) map[string]string {
	if clean == nil {
		clean = func(s string) string { return s }
	}
	join := func(text string) string {
		if o.Summary != nil {
			return clean("<p>" + *o.Summary + "</p>\n" + text)
		}
		return clean(text)
	}
	if len(o.ContentMap) > 0 {
		out := make(map[string]string, len(o.ContentMap))
		for lang, text := range o.ContentMap {
			out[lang] = join(text)
		}
		return out
	}
	content := o.Content
	if content == nil {
		content = o.Name
	}
	switch {
	case content != nil:
		return map[string]string{"default": join(*content)}
	case o.Summary != nil:
		return map[string]string{"default": clean(*o.Summary)}
	default:
		return nil
	}
}
