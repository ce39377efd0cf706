package textify

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// sanitizeSelector matches the subtrees that never produce text.
const sanitizeSelector = "style, script"

// document is the private parse result of one Textify call.
type document struct {
	root *html.Node
	sel  *goquery.Document
}

// parse builds the tree for already whitespace-normalized markup and strips
// the non-content subtrees. Scripting is disabled so <noscript> bodies are
// parsed as markup rather than raw text.
func parse(markup string) (*document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(markup), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	sel := goquery.NewDocumentFromNode(root)
	sel.Find(sanitizeSelector).Remove()
	return &document{root: root, sel: sel}, nil
}

// baseHref returns the href of the first <base> element carrying one.
func (d *document) baseHref() (string, bool) {
	return d.sel.Find("base[href]").First().Attr("href")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func isPresentation(n *html.Node) bool {
	role, ok := attr(n, "role")
	return ok && strings.EqualFold(strings.TrimSpace(role), "presentation")
}
