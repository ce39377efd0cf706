package app

import (
	"bufio"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDF layout in millimetres. Courier keeps the column alignment of tables
// and rules intact.
const (
	pdfFont       = "Courier"
	pdfFontSize   = 9
	pdfLineHeight = 4.2
)

// writePDF typesets the plain text line by line on A4 pages. Long lines wrap
// at the right margin.
func writePDF(w io.Writer, text string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont(pdfFont, "", pdfFontSize)
	pdf.AddPage()
	// The core fonts are cp1252; translate from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			pdf.Ln(pdfLineHeight)
			continue
		}
		pdf.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return pdf.Output(w)
}
