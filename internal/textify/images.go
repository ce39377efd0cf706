package textify

import (
	"strings"

	"golang.org/x/net/html"
)

// embeddedSource stands in for data: URIs, whose payload is never emitted.
const embeddedSource = "embedded"

// renderImage returns "alt (src)" for images with alternative text and
// nothing for purely decorative ones.
func renderImage(n *html.Node) string {
	alt, _ := attr(n, "alt")
	alt = strings.TrimSpace(alt)
	if alt == "" {
		return ""
	}
	src, _ := attr(n, "src")
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return alt
	case strings.HasPrefix(strings.ToLower(src), "data:"):
		src = embeddedSource
	}
	return alt + " (" + src + ")"
}
