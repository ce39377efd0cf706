// Package textify renders HTML as plain text. Links, headings, lists, tables
// and images keep their reader-visible structure through plain text
// conventions; purely presentational markup is dropped.
package textify

import (
	"github.com/rs/zerolog/log"
)

// Converter turns HTML markup into plain text.
// Implementations must be deterministic and never fail.
type Converter interface {
	Textify(html string) string
}

// Writer is the rule-based Converter. Its options are fixed at construction,
// so a Writer may be shared by concurrent callers.
type Writer struct {
	opts Options
}

// New returns a Writer for opts with defaults filled in.
func New(opts Options) *Writer {
	return &Writer{opts: opts.withDefaults()}
}

// Options returns the effective options of w.
func (w *Writer) Options() Options {
	return w.opts
}

// Textify converts html to text ending in exactly one newline. Every input is
// accepted; at worst the result is a lone newline.
func (w *Writer) Textify(html string) string {
	doc, err := parse(NormalizeWhitespace(html))
	if err != nil {
		log.Debug().Err(err).Msg("html parse failed; emitting empty text")
		return normalizeLines("")
	}
	r := &renderer{opts: w.opts, base: w.opts.LinkBase}
	if href, ok := doc.baseHref(); ok {
		r.base = href
	}
	return normalizeLines(r.render(doc.root, 0))
}

// Textify converts html with the default options.
func Textify(html string) string {
	return New(Options{}).Textify(html)
}
