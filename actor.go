package apub

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// Actor is an Object augmented with the actor-specific properties: the
// inbox and outbox endpoints, the follower graph collections, and the
// public key material peers use to verify signed requests.
// See https://www.w3.org/TR/activitypub/#actor-objects.
type Actor struct {
	Object

	Inbox             *string
	Outbox            *string
	Followers         *string
	Following         *string
	Liked             *string
	PreferredUsername *string
	NameMap           map[string]string
	Endpoints         *Endpoints
	PublicKey         List[PublicKey]
}

var actorKeys = union(objectKeys,
	"inbox", "outbox", "followers", "following", "liked",
	"preferredUsername", "nameMap", "endpoints", "publicKey",
)

// Endpoints is the map of additional endpoints an actor may share. Only
// sharedInbox sees real use.
type Endpoints struct {
	SharedInbox *string

	// Extra preserves unrecognized fields for re-serialisation.
	Extra map[string]any
}

var endpointsKeys = keySet("sharedInbox")

// PublicKey is the key material actors attach under the security context:
// the key id, its owner, and the PEM-encoded key itself.
type PublicKey struct {
	ID    string
	Owner string
	PEM   string
}

// Decode parses the PEM block into a crypto.PublicKey.
func (k PublicKey) Decode() (crypto.PublicKey, error) {
	block, _ := pem.Decode([]byte(k.PEM))
	if block == nil {
		return nil, fmt.Errorf("apub: key %s: no pem block", k.ID)
	}
	if block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("apub: key %s: invalid pem type: %s", k.ID, block.Type)
	}
	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("apub: key %s: parsepkixpublickey: %w", k.ID, err)
	}
	return publicKey, nil
}

// ExtractActor extracts an Actor from a decoded value. Like every
// Object-derived kind it is tolerant: field-level problems become
// diagnostics, not errors.
func ExtractActor(v any) (*Actor, Diagnostics, error) {
	props, ok := mapFromAny(v)
	if !ok {
		return nil, nil, ErrNotAnObject
	}
	var ds Diagnostics
	a := extractActor(props, &ds)
	return a, ds, nil
}

func extractActor(props map[string]any, ds *Diagnostics) *Actor {
	a := &Actor{
		Object:            *extractObjectProps(props, actorKeys, ds),
		Inbox:             optString(props, "inbox", ds),
		Outbox:            optString(props, "outbox", ds),
		Followers:         optString(props, "followers", ds),
		Following:         optString(props, "following", ds),
		Liked:             optString(props, "liked", ds),
		PreferredUsername: optString(props, "preferredUsername", ds),
		NameMap:           optStringMap(props, "nameMap", ds),
		PublicKey:         publicKeyList(props, "publicKey", ds),
	}
	if endpoints, ok := mapFromAny(props["endpoints"]); ok {
		a.Endpoints = &Endpoints{
			SharedInbox: optString(endpoints, "sharedInbox", ds),
			Extra:       extraFields(endpoints, endpointsKeys),
		}
	} else if _, present := props["endpoints"]; present && props["endpoints"] != nil {
		ds.add("endpoints", &FieldTypeError{Field: "endpoints", Expected: "object"})
	}
	return a
}

// actorEmbed adapts actor extraction to the embedded-or-reference shape.
func actorEmbed(field string, props map[string]any, ds *Diagnostics) (*Actor, string) {
	a := extractActor(props, ds)
	return a, a.ID
}

// actorRefList extracts a field holding one or many actors, each embedded
// or referenced by URL, such as attributedTo.
func actorRefList(props map[string]any, field string, ds *Diagnostics) List[Ref[Actor]] {
	return refList(props, field, "actor or URL", actorEmbed, ds)
}

func publicKeyFromAny(field string, v any, ds *Diagnostics) (PublicKey, bool) {
	props, ok := mapFromAny(v)
	if !ok {
		return PublicKey{}, false
	}
	var k PublicKey
	if id := optString(props, "id", ds); id != nil {
		k.ID = *id
	}
	if owner := optString(props, "owner", ds); owner != nil {
		k.Owner = *owner
	}
	if pem := optString(props, "publicKeyPem", ds); pem != nil {
		k.PEM = *pem
	}
	return k, true
}

func publicKeyList(props map[string]any, field string, ds *Diagnostics) List[PublicKey] {
	return listFromAny(props, field, "public key object", publicKeyFromAny, ds)
}

// IsPerson reports whether the actor identifies itself as a Person.
func (a *Actor) IsPerson() bool {
	for _, t := range a.Type.Values() {
		if t == TypePerson {
			return true
		}
	}
	return false
}

// ValidateSecurityContext checks that an actor whose @context pulls in the
// security schema actually carries key material. An actor that declares the
// context but omits the key cannot be verified against, which is worth
// surfacing to callers that sign or check requests.
func (a *Actor) ValidateSecurityContext() error {
	if !a.Context.MatchesIRI(SecurityContext) {
		return nil
	}
	if a.PublicKey.Len() == 0 {
		return &MissingFieldError{Field: "publicKey"}
	}
	return nil
}

// PrimaryActorID returns the identifier to attribute content to when a
// payload names several actors, as Peertube does with a Person and its
// Group. A person-like entry wins over the rest; failing that, the first
// entry does.
func PrimaryActorID(l List[Ref[Actor]]) (string, bool) {
	for _, r := range l.Values() {
		actor, ok := r.Embedded()
		if !ok {
			continue
		}
		for _, t := range actor.Type.Values() {
			if t == TypePerson || t == TypeService {
				return r.ID(), true
			}
		}
	}
	for _, r := range l.Values() {
		if id := r.ID(); id != "" {
			return id, true
		}
	}
	return "", false
}

func (a *Actor) AsMap() map[string]any {
	m := a.baseMap()
	put(m, "inbox", a.Inbox)
	put(m, "outbox", a.Outbox)
	put(m, "followers", a.Followers)
	put(m, "following", a.Following)
	put(m, "liked", a.Liked)
	put(m, "preferredUsername", a.PreferredUsername)
	if a.NameMap != nil {
		m["nameMap"] = a.NameMap
	}
	if a.Endpoints != nil {
		endpoints := make(map[string]any)
		put(endpoints, "sharedInbox", a.Endpoints.SharedInbox)
		for k, v := range a.Endpoints.Extra {
			endpoints[k] = v
		}
		m["endpoints"] = endpoints
	}
	if a.PublicKey.IsSet() {
		m["publicKey"] = listAsAny(a.PublicKey, func(k PublicKey) any {
			key := make(map[string]any)
			if k.ID != "" {
				key["id"] = k.ID
			}
			if k.Owner != "" {
				key["owner"] = k.Owner
			}
			if k.PEM != "" {
				key["publicKeyPem"] = k.PEM
			}
			return key
		})
	}
	return m
}
