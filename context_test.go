package apub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextLookups(t *testing.T) {
	require := require.New(t)

	result, err := Decode([]byte(`{
		"@context": [
			"https://www.w3.org/ns/activitystreams",
			"https://w3id.org/security/v1",
			{
				"toot": "http://joinmastodon.org/ns#",
				"discoverable": "toot:discoverable"
			}
		],
		"type": "Person"
	}`))
	require.NoError(err)

	ctx := result.First().(*Actor).Context
	require.Len(ctx.Entries(), 3)

	require.True(ctx.MatchesIRI(ActivityStreamsContext))
	require.True(ctx.MatchesIRI(SecurityContext))
	require.False(ctx.MatchesIRI("https://example.org/ns"))

	require.True(ctx.HasTerm("discoverable"))
	require.True(ctx.HasTerm("toot"))
	require.False(ctx.HasTerm("indexable"))
}

func TestContextSingleString(t *testing.T) {
	require := require.New(t)

	result, err := Decode([]byte(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"type": "Note"
	}`))
	require.NoError(err)

	ctx := result.First().(*Object).Context
	require.True(ctx.MatchesIRI(ActivityStreamsContext))
	require.False(ctx.HasTerm("anything"))
}

func TestNilContextIsSafe(t *testing.T) {
	require := require.New(t)

	var ctx *Context
	require.Nil(ctx.Entries())
	require.False(ctx.MatchesIRI(ActivityStreamsContext))
	require.False(ctx.HasTerm("discoverable"))
}
