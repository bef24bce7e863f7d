package apub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeActor(t *testing.T, payload string) *Actor {
	t.Helper()
	result, err := Decode([]byte(payload))
	require.NoError(t, err)
	actor, ok := result.First().(*Actor)
	require.True(t, ok)
	return actor
}

func TestActorDiscoverability(t *testing.T) {
	t.Run("index property attachment outranks everything", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"@context": ["https://www.w3.org/ns/activitystreams", {"discoverable": "toot:discoverable"}],
			"type": "Person",
			"discoverable": false,
			"attachment": [{"type": "PropertyValue", "name": "fedineko:index", "value": "allow"}]
		}`)
		v := actor.Discoverability()
		require.True(v.Allowed)
		require.Equal(ReasonIndexProperty, v.Reason)
	})
	t.Run("index property deny", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"type": "Person",
			"attachment": [{"type": "PropertyValue", "name": "fedineko:index", "value": "deny"}]
		}`)
		v := actor.Discoverability()
		require.False(v.Allowed)
		require.Equal(ReasonIndexProperty, v.Reason)
	})
	t.Run("searchableBy public scope allows", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"type": "Person",
			"searchableBy": "https://www.w3.org/ns/activitystreams#Public"
		}`)
		v := actor.Discoverability()
		require.True(v.Allowed)
		require.Equal(ReasonSearchableBy, v.Reason)
	})
	t.Run("indexable set and true allows", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"@context": ["https://www.w3.org/ns/activitystreams", {"indexable": "toot:indexable"}],
			"type": "Person",
			"indexable": true
		}`)
		v := actor.Discoverability()
		require.True(v.Allowed)
		require.Equal(ReasonIndexable, v.Reason)
	})
	t.Run("indexable declared but unset denies", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"@context": ["https://www.w3.org/ns/activitystreams", {"indexable": "toot:indexable"}],
			"type": "Person"
		}`)
		v := actor.Discoverability()
		require.False(v.Allowed)
		require.Equal(ReasonIndexable, v.Reason)
	})
	t.Run("discoverable false denies", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"@context": ["https://www.w3.org/ns/activitystreams", {"discoverable": "toot:discoverable"}],
			"type": "Person",
			"discoverable": false
		}`)
		v := actor.Discoverability()
		require.False(v.Allowed)
		require.Equal(ReasonDiscoverable, v.Reason)
	})
	t.Run("no context at all denies", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{"type": "Person"}`)
		v := actor.Discoverability()
		require.False(v.Allowed)
		require.Equal(ReasonDefault, v.Reason)
	})
	t.Run("no signal is assumed allowed", func(t *testing.T) {
		require := require.New(t)

		actor := decodeActor(t, `{
			"@context": "https://www.w3.org/ns/activitystreams",
			"type": "Person"
		}`)
		v := actor.Discoverability()
		require.True(v.Allowed)
		require.Equal(ReasonAssumed, v.Reason)
	})
}

func TestContentDiscoverability(t *testing.T) {
	decodeObject := func(t *testing.T, payload string) *Object {
		t.Helper()
		result, err := Decode([]byte(payload))
		require.NoError(t, err)
		return result.First().(*Object)
	}

	t.Run("opt-in requires an explicit signal", func(t *testing.T) {
		require := require.New(t)

		obj := decodeObject(t, `{"type": "Note", "content": "x"}`)
		v := obj.OptInDiscoverability()
		require.False(v.Allowed)
		require.Equal(ReasonDefault, v.Reason)

		obj = decodeObject(t, `{"type": "Note", "indexable": true}`)
		v = obj.OptInDiscoverability()
		require.True(v.Allowed)
		require.Equal(ReasonIndexable, v.Reason)
	})
	t.Run("opt-out honours an explicit denial", func(t *testing.T) {
		require := require.New(t)

		obj := decodeObject(t, `{"type": "Note", "content": "x"}`)
		v := obj.OptOutDiscoverability()
		require.True(v.Allowed)
		require.Equal(ReasonAssumed, v.Reason)

		obj = decodeObject(t, `{"type": "Note", "discoverable": false}`)
		v = obj.OptOutDiscoverability()
		require.False(v.Allowed)
		require.Equal(ReasonDiscoverable, v.Reason)
	})
	t.Run("searchableBy outranks the flags", func(t *testing.T) {
		require := require.New(t)

		obj := decodeObject(t, `{
			"type": "Note",
			"searchableBy": ["https://fedineko.org/indexing#Public"],
			"indexable": false
		}`)
		v := obj.OptInDiscoverability()
		require.True(v.Allowed)
		require.Equal(ReasonSearchableBy, v.Reason)
	})
}
