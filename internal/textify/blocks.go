package textify

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const horizontalRule = "\n----------\n"

// renderHeading decorates h1-h6 and header elements as "-- text --".
func (r *renderer) renderHeading(n *html.Node, depth int) string {
	return seamJoin("-- ", r.renderChildren(n, depth), " --\n")
}

// renderPresentation flattens an element marked role="presentation": layout
// images vanish, lists and tables lose their markers and grid, anything else
// becomes its plain text followed by a newline.
func (r *renderer) renderPresentation(n *html.Node, depth int) string {
	switch n.DataAtom {
	case atom.Img:
		return ""
	case atom.Ul, atom.Ol:
		return r.renderPlainList(n, depth)
	case atom.Table:
		return r.renderPlainTable(n, depth)
	case atom.A:
		return r.renderAnchor(n, depth) + "\n"
	}
	return r.renderChildren(n, depth) + "\n"
}
