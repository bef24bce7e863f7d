package apub

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"
)

const mastodonActor = `{
	"@context": [
		"https://www.w3.org/ns/activitystreams",
		"https://w3id.org/security/v1",
		{
			"toot": "http://joinmastodon.org/ns#",
			"discoverable": "toot:discoverable",
			"indexable": "toot:indexable"
		}
	],
	"id": "https://hachyderm.io/users/alice",
	"type": "Person",
	"preferredUsername": "alice",
	"name": "Alice",
	"summary": "<p>hi</p>",
	"inbox": "https://hachyderm.io/users/alice/inbox",
	"outbox": "https://hachyderm.io/users/alice/outbox",
	"followers": "https://hachyderm.io/users/alice/followers",
	"following": "https://hachyderm.io/users/alice/following",
	"endpoints": {
		"sharedInbox": "https://hachyderm.io/inbox"
	},
	"publicKey": {
		"id": "https://hachyderm.io/users/alice#main-key",
		"owner": "https://hachyderm.io/users/alice",
		"publicKeyPem": "-----BEGIN PUBLIC KEY-----\nMFkw\n-----END PUBLIC KEY-----\n"
	},
	"icon": {
		"type": "Image",
		"mediaType": "image/png",
		"url": "https://media.hachyderm.io/avatars/alice.png"
	},
	"attachment": [
		{
			"type": "PropertyValue",
			"name": "site",
			"value": "https://alice.example"
		}
	],
	"discoverable": true,
	"indexable": true,
	"manuallyApprovesFollowers": false
}`

func TestExtractActor(t *testing.T) {
	require := require.New(t)

	result, err := Decode([]byte(mastodonActor))
	require.NoError(err)
	require.Empty(result.Diagnostics)
	require.Len(result.Entities, 1)

	actor, ok := result.First().(*Actor)
	require.True(ok)
	require.Equal("https://hachyderm.io/users/alice", actor.EntityID())
	require.True(actor.IsPerson())
	require.Equal("alice", *actor.PreferredUsername)
	require.Equal("Alice", *actor.Name)
	require.Equal("https://hachyderm.io/users/alice/inbox", *actor.Inbox)
	require.Equal("https://hachyderm.io/users/alice/outbox", *actor.Outbox)
	require.Equal("https://hachyderm.io/users/alice/followers", *actor.Followers)
	require.Equal("https://hachyderm.io/users/alice/following", *actor.Following)

	require.NotNil(actor.Endpoints)
	require.Equal("https://hachyderm.io/inbox", *actor.Endpoints.SharedInbox)

	require.Equal(1, actor.PublicKey.Len())
	key, _ := actor.PublicKey.First()
	require.Equal("https://hachyderm.io/users/alice#main-key", key.ID)
	require.Equal("https://hachyderm.io/users/alice", key.Owner)
	require.NotEmpty(key.PEM)

	avatar, ok := LargestImage(actor.Icon)
	require.True(ok)
	require.Equal("https://media.hachyderm.io/avatars/alice.png", *avatar.URL)

	require.Equal(1, actor.Attachment.Len())
	att, _ := actor.Attachment.First()
	require.True(att.IsPropertyValue())
	require.Equal("site", *att.Name)
	require.Equal("https://alice.example", *att.Content)

	require.Contains(actor.Extra, "manuallyApprovesFollowers")

	require.True(actor.Context.MatchesIRI(SecurityContext))
	require.NoError(actor.ValidateSecurityContext())
}

func TestActorRoundTrip(t *testing.T) {
	require := require.New(t)

	first, err := Decode([]byte(mastodonActor))
	require.NoError(err)
	actor := first.First().(*Actor)

	data, err := Marshal(actor)
	require.NoError(err)

	second, err := Decode(data)
	require.NoError(err)
	require.Empty(second.Diagnostics)
	require.Equal(actor, second.First())
}

func TestValidateSecurityContext(t *testing.T) {
	t.Run("security context without key material fails", func(t *testing.T) {
		require := require.New(t)

		result, err := Decode([]byte(`{
			"@context": ["https://www.w3.org/ns/activitystreams", "https://w3id.org/security/v1"],
			"id": "https://example.org/users/bob",
			"type": "Person"
		}`))
		require.NoError(err)

		actor := result.First().(*Actor)
		err = actor.ValidateSecurityContext()
		var missing *MissingFieldError
		require.ErrorAs(err, &missing)
		require.Equal("publicKey", missing.Field)
	})
	t.Run("no security context means nothing to check", func(t *testing.T) {
		require := require.New(t)

		result, err := Decode([]byte(`{
			"@context": "https://www.w3.org/ns/activitystreams",
			"id": "https://example.org/users/bob",
			"type": "Person"
		}`))
		require.NoError(err)

		actor := result.First().(*Actor)
		require.NoError(actor.ValidateSecurityContext())
	})
}

func TestPublicKeyDecode(t *testing.T) {
	t.Run("valid pkix key", func(t *testing.T) {
		require := require.New(t)

		rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(err)
		der, err := x509.MarshalPKIXPublicKey(&rsaKey.PublicKey)
		require.NoError(err)
		block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

		key := PublicKey{ID: "https://example.org/users/alice#main-key", PEM: string(block)}
		got, err := key.Decode()
		require.NoError(err)
		require.IsType(&rsa.PublicKey{}, got)
	})
	t.Run("garbage pem", func(t *testing.T) {
		require := require.New(t)

		key := PublicKey{ID: "k", PEM: "not a key"}
		_, err := key.Decode()
		require.Error(err)
	})
	t.Run("wrong block type", func(t *testing.T) {
		require := require.New(t)

		block := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte{1}})
		key := PublicKey{ID: "k", PEM: string(block)}
		_, err := key.Decode()
		require.Error(err)
	})
}
