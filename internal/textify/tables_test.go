package textify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextify_TableSingleRow(t *testing.T) {
	html := "<table><tr><td>Enterprise</td><td>Jean-Luc Picard</td></tr></table>"
	assert.Equal(t, "| Enterprise | Jean-Luc Picard |\n", Textify(html))
}

func TestTextify_TableHeader(t *testing.T) {
	html := "<table><thead><tr><th>Ship</th><th>Captain</th></tr></thead>" +
		"<tbody><tr><td>Enterprise</td><td>Jean-Luc Picard</td></tr></tbody></table>"
	want := "| Ship       | Captain         |\n" +
		"|------------|-----------------|\n" +
		"| Enterprise | Jean-Luc Picard |\n"
	assert.Equal(t, want, Textify(html))
}

func TestTextify_TableWithoutHeaderHasNoUnderline(t *testing.T) {
	html := "<table><tr><th>a</th></tr><tr><td>b</td></tr></table>"
	assert.Equal(t, "| a |\n| b |\n", Textify(html))
}

func TestTextify_TablesAreMeasuredSeparately(t *testing.T) {
	html := "<table><tr><td>wide cell</td></tr></table><table><tr><td>x</td></tr></table>"
	assert.Equal(t, "| wide cell |\n\n\n| x |\n", Textify(html))
}

func TestTextify_RaggedRowsArePadded(t *testing.T) {
	html := "<table><tr><td>a</td><td>b</td></tr><tr><td>ccc</td></tr></table>"
	assert.Equal(t, "| a   | b |\n| ccc |   |\n", Textify(html))
}

func TestTextify_TableCaption(t *testing.T) {
	html := "<table><caption>Crew</caption><tr><td>a</td></tr></table>"
	assert.Equal(t, "Crew\n| a |\n", Textify(html))
}

func TestTextify_PresentationTable(t *testing.T) {
	html := `<table role="presentation"><tr><td>Left</td><td>Right</td></tr></table>`
	assert.Equal(t, "Left\nRight\n", Textify(html))
}

func TestTextify_PresentationCellLeavesGrid(t *testing.T) {
	html := `<table><tr><td>a</td><td role="presentation">aside</td></tr></table>`
	assert.Equal(t, "| a |\naside\n", Textify(html))
}

func TestTextify_EmptyTable(t *testing.T) {
	assert.Equal(t, "A\n\nB\n", Textify("A<table></table>B"))
}

func TestTextify_TableGlyphs(t *testing.T) {
	w := New(Options{TableColumn: "!", TableRow: "=", TableCorner: "+"})
	html := "<table><thead><tr><th>a</th><th>bb</th></tr></thead></table>"
	assert.Equal(t, "! a ! bb !\n+===+====+\n", w.Textify(html))
}

func TestTextify_LinkInsideCell(t *testing.T) {
	html := `<table><tr><td><a href="http://x.com">site</a></td></tr></table>`
	assert.Equal(t, "| site (http://x.com) |\n", Textify(html))
}

func TestTextify_TableWidthsUseDisplayWidth(t *testing.T) {
	html := "<table><tr><td>\u65e5\u672c</td></tr><tr><td>abc</td></tr></table>"
	assert.Equal(t, "| \u65e5\u672c |\n| abc  |\n", Textify(html))
}

func TestTextify_TableCombiningMarksHaveNoWidth(t *testing.T) {
	html := "<table><tr><td>e\u0301</td><td>x</td></tr><tr><td>a</td><td>y</td></tr></table>"
	assert.Equal(t, "| e\u0301 | x |\n| a | y |\n", Textify(html))
}

func TestHeaderUnderline_SpansRow(t *testing.T) {
	r := &renderer{opts: Options{}.withDefaults()}
	widths := []int{3, 7, 1}
	line := r.headerUnderline(widths)
	require.True(t, strings.HasSuffix(line, "\n"))
	line = strings.TrimSuffix(line, "\n")

	want := 1
	for _, w := range widths {
		want += w + 3
	}
	assert.Equal(t, want, len(line))
	assert.Equal(t, "|-----|---------|---|", line)
}
