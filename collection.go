package apub

// Collection is an Object holding a set of entities or references to them,
// with an optional total count and pagination links. The ordered variants
// differ only in their type tag and in serialising items under
// orderedItems.
type Collection struct {
	Object

	TotalItems *int
	Items      List[Ref[Object]]
	First      Ref[CollectionPage]
	Last       Ref[CollectionPage]

	// ordered records which key the items arrived under, so that
	// re-serialisation emits the same one.
	ordered bool
}

var collectionKeys = union(objectKeys,
	"totalItems", "items", "orderedItems", "first", "last",
)

// CollectionPage is one page of a Collection, linked to its parent and to
// its neighbouring pages.
type CollectionPage struct {
	Collection

	PartOf Ref[Collection]
	Next   Ref[CollectionPage]
	Prev   Ref[CollectionPage]
}

var collectionPageKeys = union(collectionKeys, "partOf", "next", "prev")

// ExtractCollection extracts a Collection from a decoded value.
func ExtractCollection(v any) (*Collection, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	c := extractCollection(props, collectionKeys, &ds)
	return c, ds, nil
}

// ExtractCollectionPage extracts a CollectionPage from a decoded value.
func ExtractCollectionPage(v any) (*CollectionPage, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	p := extractCollectionPage(props, &ds)
	return p, ds, nil
}

func extractCollection(props map[string]any, known map[string]bool, ds *Diagnostics) *Collection {
	c := &Collection{
		Object:     *extractObjectProps(props, known, ds),
		TotalItems: optInt(props, "totalItems", ds),
		First:      optRef(props, "first", "collection page or URL", collectionPageEmbed, ds),
		Last:       optRef(props, "last", "collection page or URL", collectionPageEmbed, ds),
	}
	c.Items = refList(props, "items", "object or URL", objectEmbed, ds)
	if !c.Items.IsSet() {
		c.Items = refList(props, "orderedItems", "object or URL", objectEmbed, ds)
		c.ordered = c.Items.IsSet()
	}
	return c
}

func extractCollectionPage(props map[string]any, ds *Diagnostics) *CollectionPage {
	return &CollectionPage{
		Collection: *extractCollection(props, collectionPageKeys, ds),
		PartOf:     optRef(props, "partOf", "collection or URL", collectionEmbed, ds),
		Next:       optRef(props, "next", "collection page or URL", collectionPageEmbed, ds),
		Prev:       optRef(props, "prev", "collection page or URL", collectionPageEmbed, ds),
	}
}

func collectionEmbed(field string, props map[string]any, ds *Diagnostics) (*Collection, string) {
	c := extractCollection(props, collectionKeys, ds)
	return c, c.ID
}

func collectionPageEmbed(field string, props map[string]any, ds *Diagnostics) (*CollectionPage, string) {
	p := extractCollectionPage(props, ds)
	return p, p.ID
}

// Ordered reports whether the collection declares one of the ordered type
// tags or serialised its items under orderedItems.
func (c *Collection) Ordered() bool {
	if c.ordered {
		return true
	}
	for _, t := range c.Type.Values() {
		if IsOrderedCollectionType(t) {
			return true
		}
	}
	return false
}

func (c *Collection) AsMap() map[string]any {
	m := c.baseMap()
	put(m, "totalItems", c.TotalItems)
	if c.Items.IsSet() {
		key := "items"
		if c.ordered {
			key = "orderedItems"
		}
		m[key] = listAsAny(c.Items, func(r Ref[Object]) any {
			return refAsAny(r, (*Object).AsMap)
		})
	}
	if c.First.IsSet() {
		m["first"] = refAsAny(c.First, (*CollectionPage).AsMap)
	}
	if c.Last.IsSet() {
		m["last"] = refAsAny(c.Last, (*CollectionPage).AsMap)
	}
	return m
}

func (p *CollectionPage) AsMap() map[string]any {
	m := p.Collection.AsMap()
	if p.PartOf.IsSet() {
		m["partOf"] = refAsAny(p.PartOf, (*Collection).AsMap)
	}
	if p.Next.IsSet() {
		m["next"] = refAsAny(p.Next, (*CollectionPage).AsMap)
	}
	if p.Prev.IsSet() {
		m["prev"] = refAsAny(p.Prev, (*CollectionPage).AsMap)
	}
	return m
}
