// Package apub models a pragmatic subset of the ActivityPub and
// ActivityStreams vocabulary as typed Go values that can be decoded from,
// and re-emitted as, JSON payloads.
//
// Real-world fediverse producers deviate from the spec constantly: a field
// may hold one value or a list of values, a full nested object or a bare
// identifier string, and any field may simply be missing. The package
// absorbs this variability instead of failing on it. Shape-variable fields
// are expressed with two small generic types: List, which records whether a
// value arrived as a single item or a sequence, and Ref, which records
// whether a value arrived embedded or as a reference.
//
// Decoding is tolerant. A malformed optional field never fails the whole
// entity; it is left unset and reported through a Diagnostics value. Keys
// the package does not recognise are preserved verbatim in each entity's
// Extra map so that a decoded entity re-serialises without losing them.
//
// The package performs no I/O. Resolving a Ref to the entity it names, and
// everything transport related, is the caller's responsibility.
package apub
