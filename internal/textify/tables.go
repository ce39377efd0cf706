package textify

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// textWidth measures cells by terminal display width. East Asian ambiguous
// runes count as narrow regardless of the process locale so output does not
// depend on the environment.
var textWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// tableRow is one tr of a table after its cells have been rendered.
type tableRow struct {
	cells  []string
	header bool
	// loose holds row text that does not take part in the grid, such as
	// presentation cells.
	loose []string
}

// tablePart is either a grid row or a free-standing line like a caption.
type tablePart struct {
	row  *tableRow
	text string
}

// renderTable lays out one table in two passes: every cell is rendered and
// measured first, then rows are padded to the column widths of this table.
func (r *renderer) renderTable(n *html.Node, depth int) string {
	parts := r.collectTable(n, depth)
	widths := measureColumns(parts)
	return r.layoutTable(parts, widths)
}

func (r *renderer) collectTable(table *html.Node, depth int) []tablePart {
	var parts []tablePart
	var walk func(n *html.Node, depth int, header bool)
	walk = func(n *html.Node, depth int, header bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case isElement(c, atom.Thead):
				walk(c, depth+1, true)
			case isElement(c, atom.Tbody), isElement(c, atom.Tfoot):
				walk(c, depth+1, false)
			case isElement(c, atom.Tr):
				parts = append(parts, tablePart{row: r.collectRow(c, depth+1, header)})
			default:
				// captions and stray content; whitespace between rows is dropped
				if text := trimASCIISpace(r.render(c, depth+1)); text != "" {
					parts = append(parts, tablePart{text: text})
				}
			}
		}
	}
	walk(table, depth, false)
	return parts
}

func (r *renderer) collectRow(tr *html.Node, depth int, header bool) *tableRow {
	row := &tableRow{header: header}
	plain := isPresentation(tr)
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, atom.Td) || isElement(c, atom.Th) {
			text := r.cellText(c, depth+1)
			if plain || isPresentation(c) {
				if text != "" {
					row.loose = append(row.loose, text)
				}
				continue
			}
			row.cells = append(row.cells, text)
			continue
		}
		if text := trimASCIISpace(r.render(c, depth+1)); text != "" {
			row.loose = append(row.loose, text)
		}
	}
	return row
}

func (r *renderer) cellText(cell *html.Node, depth int) string {
	return trimASCIISpace(r.renderChildren(cell, depth))
}

// measureColumns returns, per column, the widest cell of the table.
func measureColumns(parts []tablePart) []int {
	var widths []int
	for _, p := range parts {
		if p.row == nil {
			continue
		}
		for i, cell := range p.row.cells {
			w := textWidth.StringWidth(cell)
			if i == len(widths) {
				widths = append(widths, w)
				continue
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// layoutTable renders measured parts. Rows shorter than the table are padded
// with empty cells and every header row is followed by an underline.
func (r *renderer) layoutTable(parts []tablePart, widths []int) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, p := range parts {
		if p.row == nil {
			b.WriteString(p.text + "\n")
			continue
		}
		if len(p.row.cells) > 0 {
			for i, w := range widths {
				var cell string
				if i < len(p.row.cells) {
					cell = p.row.cells[i]
				}
				b.WriteString(r.opts.TableColumn + " " + textWidth.FillRight(cell, w+1))
			}
			b.WriteString(r.opts.TableColumn + "\n")
			if p.row.header {
				b.WriteString(r.headerUnderline(widths))
			}
		}
		for _, text := range p.row.loose {
			b.WriteString(text + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (r *renderer) headerUnderline(widths []int) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat(r.opts.TableRow, w+2)
	}
	return r.opts.TableCorner + strings.Join(segments, r.opts.TableCorner) + r.opts.TableCorner + "\n"
}

// renderPlainTable writes the cells of a presentation table one per line,
// without pipes or padding.
func (r *renderer) renderPlainTable(n *html.Node, depth int) string {
	var b strings.Builder
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case isElement(c, atom.Thead), isElement(c, atom.Tbody), isElement(c, atom.Tfoot), isElement(c, atom.Tr):
				walk(c, depth+1)
			case isElement(c, atom.Td), isElement(c, atom.Th):
				if text := r.cellText(c, depth+1); text != "" {
					b.WriteString(text + "\n")
				}
			default:
				if text := trimASCIISpace(r.render(c, depth+1)); text != "" {
					b.WriteString(text + "\n")
				}
			}
		}
	}
	walk(n, depth)
	return b.String()
}
