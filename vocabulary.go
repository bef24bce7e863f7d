package apub

// ActivityStreams vocabulary. Only the subset observed in real-world
// payloads is modelled; anything else dispatches to a generic Object.

const (
	// ActivityStreamsContext is the JSON-LD context every conformant
	// payload declares.
	ActivityStreamsContext = "https://www.w3.org/ns/activitystreams"

	// SecurityContext is the JSON-LD context declaring public key terms.
	SecurityContext = "https://w3id.org/security/v1"

	// PublicAudience addresses an activity to the world.
	PublicAudience = "https://www.w3.org/ns/activitystreams#Public"

	// ContentType is the media type ActivityPub payloads are served as.
	ContentType = `application/activity+json; profile="https://www.w3.org/ns/activitystreams"`
)

// Activity types.
const (
	TypeAccept   = "Accept"
	TypeAnnounce = "Announce"
	TypeCreate   = "Create"
	TypeDelete   = "Delete"
	TypeFollow   = "Follow"
	TypeLike     = "Like"
	TypeReject   = "Reject"
	TypeUndo     = "Undo"
	TypeUpdate   = "Update"
)

// Actor types.
const (
	TypeActor        = "Actor"
	TypeApplication  = "Application"
	TypeGroup        = "Group"
	TypeOrganization = "Organization"
	TypePerson       = "Person"
	TypeService      = "Service"
)

// Collection types.
const (
	TypeCollection            = "Collection"
	TypeCollectionPage        = "CollectionPage"
	TypeOrderedCollection     = "OrderedCollection"
	TypeOrderedCollectionPage = "OrderedCollectionPage"
)

// Content types.
const (
	TypeArticle   = "Article"
	TypeDocument  = "Document"
	TypeImage     = "Image"
	TypeNote      = "Note"
	TypePage      = "Page"
	TypePoll      = "Poll"
	TypeQuestion  = "Question"
	TypeTombstone = "Tombstone"
	TypeVideo     = "Video"
)

// Tag types.
const (
	TypeEmoji         = "Emoji"
	TypeHashtag       = "Hashtag"
	TypeMention       = "Mention"
	TypePropertyValue = "PropertyValue"
	TypeTag           = "Tag"
)

// TypeLink is the only Link type.
const TypeLink = "Link"

// IsActivityType reports whether tag names an activity kind.
func IsActivityType(tag string) bool {
	switch tag {
	case TypeAccept, TypeAnnounce, TypeCreate, TypeDelete, TypeFollow,
		TypeLike, TypeReject, TypeUndo, TypeUpdate:
		return true
	}
	return false
}

// IsActorType reports whether tag names an actor kind.
func IsActorType(tag string) bool {
	switch tag {
	case TypeActor, TypeApplication, TypeGroup, TypeOrganization,
		TypePerson, TypeService:
		return true
	}
	return false
}

// IsCollectionType reports whether tag names a collection kind, paged or
// not.
func IsCollectionType(tag string) bool {
	switch tag {
	case TypeCollection, TypeCollectionPage, TypeOrderedCollection,
		TypeOrderedCollectionPage:
		return true
	}
	return false
}

// IsCollectionPageType reports whether tag names a collection page kind.
func IsCollectionPageType(tag string) bool {
	return tag == TypeCollectionPage || tag == TypeOrderedCollectionPage
}

// IsOrderedCollectionType reports whether tag names an ordered collection
// kind.
func IsOrderedCollectionType(tag string) bool {
	return tag == TypeOrderedCollection || tag == TypeOrderedCollectionPage
}

// IsContentType reports whether tag names a content kind: notes, articles,
// media and their tombstones.
func IsContentType(tag string) bool {
	switch tag {
	case TypeArticle, TypeDocument, TypeImage, TypeNote, TypePage,
		TypePoll, TypeQuestion, TypeTombstone, TypeVideo:
		return true
	}
	return false
}

// IsTagType reports whether tag names a tag kind: hashtags, mentions,
// custom emoji and profile property values.
func IsTagType(tag string) bool {
	switch tag {
	case TypeEmoji, TypeHashtag, TypeMention, TypePropertyValue, TypeTag:
		return true
	}
	return false
}

// Recognized reports whether this package has a schema for tag.
func Recognized(tag string) bool {
	return IsActivityType(tag) || IsActorType(tag) || IsCollectionType(tag) ||
		IsContentType(tag) || IsTagType(tag) || tag == TypeLink
}
