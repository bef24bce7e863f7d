package apub

import (
	"net/url"
	"regexp"
)

// When all that survives of an entity is its URL, the URL's path shape is
// often enough to tell an actor from a piece of content: most fediverse
// servers use a small set of well-known layouts. Unreliable, but useful as
// a last resort for tombstoned or reference-only objects.

var actorPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^/(users|u)/(?P<user>[^/]+)$`),
	regexp.MustCompile(`(?i)^/profile/(?P<user>[^/]+)$`),
	regexp.MustCompile(`(?i)^/ap/users/(?P<user>\d+)$`),
}

var contentPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^/users/[^/]+/statuses/\d+$`), // Mastodon-like
	regexp.MustCompile(`(?i)^/notes/.+$`),                 // Misskey-like
	regexp.MustCompile(`(?i)^/p/([^/]+)/\d+$`),            // Pixelfed-like
	regexp.MustCompile(`(?i)^/post/\d+$`),                 // Lemmy-like
	regexp.MustCompile(`(?i)^/(notice|objects)/[^/]+$`),   // Soapbox-like
	regexp.MustCompile(`(?i)^/ap/users/\d+/post/\d+/?$`),  // threads.net scheme
}

// GuessedKind is what a URL's shape suggests it points at.
type GuessedKind int

const (
	// GuessedUnknown means the URL matched no known layout.
	GuessedUnknown GuessedKind = iota
	// GuessedActor means the URL looks like an actor page.
	GuessedActor
	// GuessedContent means the URL looks like a post.
	GuessedContent
)

// GuessKind infers what rawURL points at from its path shape.
func GuessKind(rawURL string) GuessedKind {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return GuessedUnknown
	}
	for _, re := range actorPathPatterns {
		if re.MatchString(u.Path) {
			return GuessedActor
		}
	}
	for _, re := range contentPathPatterns {
		if re.MatchString(u.Path) {
			return GuessedContent
		}
	}
	return GuessedUnknown
}

// UsernameFromURL extracts the account name from an actor URL in one of
// the known layouts. There is no guarantee it matches the account's actual
// preferredUsername, but in practice it usually does.
func UsernameFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "", false
	}
	for _, re := range actorPathPatterns {
		m := re.FindStringSubmatch(u.Path)
		if m == nil {
			continue
		}
		if i := re.SubexpIndex("user"); i >= 0 && m[i] != "" {
			return m[i], true
		}
	}
	return "", false
}

// Handle is an actor expressed as a username and the host it belongs to.
type Handle struct {
	User string
	Host string
}

func (h Handle) String() string {
	return "@" + h.User + "@" + h.Host
}

// HandleFromURL builds a readable Handle from an actor URL, combining the
// guessed username with the URL's host.
func HandleFromURL(rawURL string) (Handle, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Handle{}, false
	}
	user, ok := UsernameFromURL(rawURL)
	if !ok {
		return Handle{}, false
	}
	return Handle{User: user, Host: u.Host}, true
}
