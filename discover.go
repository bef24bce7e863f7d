package apub

// Fediverse actors signal consent to being indexed through a pile of
// overlapping conventions: the toot `discoverable` flag, the FEP-5feb
// `indexable` flag, Fedibird's `searchableBy` scopes, and per-profile
// PropertyValue attachments. The ladders below mirror how those signals
// are prioritised in practice.

// IndexingPublicScope is the searchableBy value granting indexers access.
const IndexingPublicScope = "https://fedineko.org/indexing#Public"

// indexProperty is the PropertyValue attachment name used as an escape
// hatch by services that support neither discoverable nor indexable.
const indexProperty = "fedineko:index"

// DiscoverReason identifies which signal decided a discoverability
// verdict.
type DiscoverReason string

const (
	// ReasonDiscoverable means the discoverable flag decided.
	ReasonDiscoverable DiscoverReason = "discoverable"
	// ReasonIndexable means the indexable flag decided.
	ReasonIndexable DiscoverReason = "indexable"
	// ReasonIndexProperty means a fedineko:index PropertyValue decided.
	ReasonIndexProperty DiscoverReason = "index property"
	// ReasonSearchableBy means a searchableBy scope decided.
	ReasonSearchableBy DiscoverReason = "searchableBy"
	// ReasonAssumed means no signal denied indexing, so it is assumed
	// allowed; ActivityPub does not require any of these properties.
	ReasonAssumed DiscoverReason = "assumed"
	// ReasonDefault means no signal was present and the caller's default
	// applied.
	ReasonDefault DiscoverReason = "default"
)

// Discoverability is the verdict on whether an actor or a piece of content
// consents to indexing, and which signal decided it.
type Discoverability struct {
	Allowed bool
	Reason  DiscoverReason
}

func allowed(reason DiscoverReason) Discoverability {
	return Discoverability{Allowed: true, Reason: reason}
}

func denied(reason DiscoverReason) Discoverability {
	return Discoverability{Allowed: false, Reason: reason}
}

// searchableByVerdict reports whether any searchableBy scope grants public
// indexing.
func searchableByVerdict(scopes List[string]) (Discoverability, bool) {
	for _, scope := range scopes.Values() {
		switch scope {
		case PublicAudience, IndexingPublicScope:
			return allowed(ReasonSearchableBy), true
		}
	}
	return Discoverability{}, false
}

// Discoverability returns the actor-level indexing verdict. Signals are
// checked in priority order: the fedineko:index property attachment, then
// searchableBy, then indexable, then discoverable. A flag that is declared
// in the @context but left unset counts as a denial, since the intention
// behind that is unknowable. When nothing denies, indexing is assumed
// allowed.
func (a *Actor) Discoverability() Discoverability {
	for _, att := range a.Attachment.Values() {
		if !att.IsPropertyValue() || att.Name == nil || att.Content == nil {
			continue
		}
		if *att.Name != indexProperty {
			continue
		}
		if *att.Content == "allow" {
			return allowed(ReasonIndexProperty)
		}
		// anything else is taken as intent to deny
		return denied(ReasonIndexProperty)
	}

	if v, ok := searchableByVerdict(a.SearchableBy); ok {
		return v
	}

	if a.Context == nil {
		// no context at all; the object is not well formed, so deny
		return denied(ReasonDefault)
	}

	if a.Context.HasTerm("indexable") {
		if a.Indexable != nil {
			if *a.Indexable {
				return allowed(ReasonIndexable)
			}
			return denied(ReasonIndexable)
		}
		return denied(ReasonIndexable)
	}

	if a.Context.HasTerm("discoverable") {
		if a.Discoverable != nil {
			if *a.Discoverable {
				return allowed(ReasonDiscoverable)
			}
			return denied(ReasonDiscoverable)
		}
		return denied(ReasonDiscoverable)
	}

	return allowed(ReasonAssumed)
}

// ContentDiscoverability returns the per-content indexing verdict, falling
// back to def when the content carries no signal of its own. searchableBy
// outranks the account-level flags here.
func (o *Object) ContentDiscoverability(def Discoverability) Discoverability {
	if v, ok := searchableByVerdict(o.SearchableBy); ok {
		return v
	}
	if o.Indexable != nil {
		if *o.Indexable {
			return allowed(ReasonIndexable)
		}
		return denied(ReasonIndexable)
	}
	if o.Discoverable != nil {
		if *o.Discoverable {
			return allowed(ReasonDiscoverable)
		}
		return denied(ReasonDiscoverable)
	}
	return def
}

// OptInDiscoverability is ContentDiscoverability for content whose author
// denied indexing at the account level: the content is denied unless it
// explicitly opts in.
func (o *Object) OptInDiscoverability() Discoverability {
	return o.ContentDiscoverability(denied(ReasonDefault))
}

// OptOutDiscoverability is ContentDiscoverability for content whose author
// allowed indexing at the account level: the content is allowed unless it
// explicitly opts out.
func (o *Object) OptOutDiscoverability() Discoverability {
	return o.ContentDiscoverability(allowed(ReasonAssumed))
}
