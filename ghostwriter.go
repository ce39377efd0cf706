// Package ghostwriter converts HTML documents into readable plain text.
//
//	w := ghostwriter.New(ghostwriter.Options{LinkBase: "https://example.com"})
//	text := w.Textify(html)
//
// Links keep their targets in brackets, headings are framed with dashes,
// lists get markers and tables are drawn with pipes. The output always ends
// in exactly one newline.
package ghostwriter

import "github.com/hyperifyio/ghostwriter/internal/textify"

type (
	// Options configures a Writer; zero fields take the defaults.
	Options = textify.Options
	// Writer converts HTML with fixed options and is safe for concurrent use.
	Writer = textify.Writer
	// Converter is implemented by Writer.
	Converter = textify.Converter
	// MarkerSequence yields ordered-list markers.
	MarkerSequence = textify.MarkerSequence
)

// New returns a Writer for opts.
func New(opts Options) *Writer {
	return textify.New(opts)
}

// Textify converts html with the default options.
func Textify(html string) string {
	return textify.Textify(html)
}
