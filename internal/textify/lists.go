package textify

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderList prefixes the direct items of ul/ol with their markers and sets
// the list apart as its own block.
func (r *renderer) renderList(n *html.Node, depth int) string {
	var seq MarkerSequence
	if n.DataAtom == atom.Ol {
		seq = NewMarkerSequence(r.opts.OLMarker)
	}
	var b strings.Builder
	b.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !isElement(c, atom.Li) || isPresentation(c) {
			b.WriteString(r.render(c, depth+1))
			continue
		}
		b.WriteString(seamJoin(r.itemMarker(seq), r.renderChildren(c, depth+1), "\n"))
	}
	b.WriteString("\n")
	return b.String()
}

func (r *renderer) itemMarker(seq MarkerSequence) string {
	if seq == nil {
		return r.opts.ULMarker + " "
	}
	m := seq.Current() + ". "
	seq.Advance()
	return m
}

// renderPlainList writes the items of a presentation list one per line.
func (r *renderer) renderPlainList(n *html.Node, depth int) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Li) {
			b.WriteString(strings.TrimLeft(r.renderChildren(c, depth+1), " ") + "\n")
			continue
		}
		b.WriteString(r.render(c, depth+1))
	}
	return b.String()
}
