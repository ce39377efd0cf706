package textify

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderer walks one parsed document and returns the text of each subtree.
// It never mutates the tree.
type renderer struct {
	opts Options
	base string
}

func (r *renderer) render(n *html.Node, depth int) string {
	switch n.Type {
	case html.TextNode:
		return n.Data
	case html.DocumentNode:
		return r.renderChildren(n, depth)
	case html.ElementNode:
		if depth > r.opts.MaxDepth {
			log.Debug().Int("depth", depth).Str("tag", n.Data).Msg("nesting limit reached; flattening subtree")
			return flattenText(n)
		}
		// Presentation roles are neutralized before any structural rule.
		if isPresentation(n) {
			return r.renderPresentation(n, depth)
		}
		return r.renderElement(n, depth)
	}
	return ""
}

func (r *renderer) renderElement(n *html.Node, depth int) string {
	switch n.DataAtom {
	case atom.A:
		return r.renderAnchor(n, depth)
	case atom.Img:
		return renderImage(n)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Header:
		return r.renderHeading(n, depth)
	case atom.Ul, atom.Ol:
		return r.renderList(n, depth)
	case atom.Table:
		return r.renderTable(n, depth)
	case atom.Hr:
		return horizontalRule
	case atom.Br:
		return "\n"
	case atom.P:
		return r.renderChildren(n, depth) + "\n\n"
	}
	return r.renderChildren(n, depth)
}

func (r *renderer) renderChildren(n *html.Node, depth int) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(r.render(c, depth+1))
	}
	return b.String()
}

// flattenText returns the text of n in document order using an explicit
// stack, so arbitrarily deep subtrees cost no recursion.
func flattenText(n *html.Node) string {
	var b strings.Builder
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
		case html.ElementNode, html.DocumentNode:
			for c := cur.LastChild; c != nil; c = c.PrevSibling {
				stack = append(stack, c)
			}
		}
	}
	return b.String()
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}
