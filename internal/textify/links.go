package textify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// literalSchemes are stripped from hrefs that do not parse as URIs, which is
// typical of hand-written phone numbers and addresses ("tel:+1 555 0100").
var literalSchemes = []string{"tel:", "mailto:"}

// opaqueSchemes name schemes written without "//". Any other "name:" prefix
// is treated as a host and port ("localhost:8080/").
var opaqueSchemes = []string{"mailto:", "tel:", "sms:", "data:", "javascript:", "urn:", "news:", "file:"}

// renderAnchor appends the resolved target to the link text, or replaces the
// text by the target when the text already states it. A missing href
// resolves like an empty one, to the base alone.
func (r *renderer) renderAnchor(n *html.Node, depth int) string {
	text := r.renderChildren(n, depth)
	href, _ := attr(n, "href")
	target := ResolveLink(href, r.base)
	if target == "" {
		return text
	}
	if LinkMatches(target, text) {
		return target
	}
	return text + " (" + target + ")"
}

// ResolveLink resolves href against base. Absolute URIs are kept, relative
// ones are prefixed with base verbatim, and values that are not URIs at all
// are used literally, without base and without a tel: or mailto: prefix.
func ResolveLink(href, base string) string {
	u, err := parseURIReference(href)
	if err != nil {
		log.Debug().Err(err).Str("href", href).Msg("href is not a URI; using it literally")
		for _, scheme := range literalSchemes {
			if strings.HasPrefix(href, scheme) {
				href = href[len(scheme):]
				break
			}
		}
		return strings.TrimSpace(href)
	}
	if u.Scheme != "" || u.Host != "" {
		return href
	}
	return base + href
}

// LinkMatches reports whether text already names target. An http:// or
// https:// prefix and one trailing slash are ignored on both sides; values
// with any other scheme must match exactly.
func LinkMatches(target, text string) bool {
	return canonicalLink(target) == canonicalLink(strings.TrimSpace(text))
}

func canonicalLink(s string) string {
	for _, prefix := range []string{"http://", "https://"} {
		if strings.HasPrefix(s, prefix) {
			return strings.TrimSuffix(s[len(prefix):], "/")
		}
	}
	if hasScheme(s) {
		return s
	}
	return strings.TrimSuffix(s, "/")
}

// hasScheme reports whether s starts with "scheme://" or a known opaque
// scheme. url.Parse is not enough: it reads "example.com:8080/" as scheme
// "example.com".
func hasScheme(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if strings.HasPrefix(s[len(u.Scheme)+1:], "//") {
		return true
	}
	lower := strings.ToLower(s)
	for _, scheme := range opaqueSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// parseURIReference is url.Parse restricted to the RFC 3986 character set:
// url.Parse alone accepts spaces and other characters a URI may not contain.
func parseURIReference(s string) (*url.URL, error) {
	for _, c := range s {
		if !isURIRune(c) {
			return nil, fmt.Errorf("invalid character %q in URI", c)
		}
	}
	return url.Parse(s)
}

func isURIRune(c rune) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	switch c {
	case '"', '<', '>', '\\', '^', '`', '{', '|', '}':
		return false
	}
	return true
}
