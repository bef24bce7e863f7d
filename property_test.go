package apub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListNormalisesSingleOrMany(t *testing.T) {
	t.Run("bare scalar is a singular one-element list", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"to": "https://example.org/actors/alice"}
		l := stringList(props, "to", &ds)
		require.Empty(ds)
		require.True(l.IsSet())
		require.True(l.Singular())
		require.Equal([]string{"https://example.org/actors/alice"}, l.Values())
	})
	t.Run("array is a plural list in order", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"to": []any{"a", "b", "c"}}
		l := stringList(props, "to", &ds)
		require.Empty(ds)
		require.True(l.IsSet())
		require.False(l.Singular())
		require.Equal([]string{"a", "b", "c"}, l.Values())
	})
	t.Run("absent field is unset, not an error", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		l := stringList(map[string]any{}, "to", &ds)
		require.Empty(ds)
		require.False(l.IsSet())
		require.Zero(l.Len())
	})
	t.Run("empty array stays distinguishable from absent", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"to": []any{}}
		l := stringList(props, "to", &ds)
		require.Empty(ds)
		require.True(l.IsSet())
		require.Zero(l.Len())
	})
	t.Run("wrong-typed scalar is unset plus diagnostic", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"to": 42.0}
		l := stringList(props, "to", &ds)
		require.False(l.IsSet())
		require.Len(ds, 1)
		require.IsType(&FieldTypeError{}, ds[0].Err)
	})
	t.Run("bad elements are dropped, good ones survive", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"to": []any{"a", 1.0, "b"}}
		l := stringList(props, "to", &ds)
		require.Equal([]string{"a", "b"}, l.Values())
		require.Len(ds, 1)
		require.Equal("to[1]", ds[0].Field)
	})
}

func TestRefNormalisesEmbeddedOrReference(t *testing.T) {
	t.Run("bare string becomes a reference", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"attributedTo": "https://example.org/actors/alice"}
		l := actorRefList(props, "attributedTo", &ds)
		require.Empty(ds)
		require.Equal(1, l.Len())

		r, _ := l.First()
		id, ok := r.Reference()
		require.True(ok)
		require.Equal("https://example.org/actors/alice", id)
		_, embedded := r.Embedded()
		require.False(embedded)
	})
	t.Run("object becomes an embedded actor", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{
			"attributedTo": map[string]any{
				"id":   "https://example.org/actors/alice",
				"type": "Person",
			},
		}
		l := actorRefList(props, "attributedTo", &ds)
		require.Empty(ds)

		r, _ := l.First()
		require.Equal("https://example.org/actors/alice", r.ID())
		actor, ok := r.Embedded()
		require.True(ok)
		require.True(actor.IsPerson())
		_, refOnly := r.Reference()
		require.False(refOnly)
	})
	t.Run("any other shape is a diagnostic", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{"inReplyTo": true}
		r := optRef(props, "inReplyTo", "object or URL", objectEmbed, &ds)
		require.False(r.IsSet())
		require.Len(ds, 1)
		require.IsType(&FieldTypeError{}, ds[0].Err)
	})
}
