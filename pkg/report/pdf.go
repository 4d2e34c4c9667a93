package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

const fontFamily = "Helvetica"

// Render draws doc on A4 pages and returns the PDF bytes. Nothing is written
// anywhere until the whole document has been produced.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("movimientos", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(0.2)

	// Core fonts are cp1252; this keeps accents and ñ readable.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, r := range page.Rules {
			pdf.Line(r.X1, r.Y1, r.X2, r.Y2)
		}
		for _, t := range page.Texts {
			pdf.SetFont(fontFamily, "", t.Size)
			pdf.Text(t.X, t.Y, tr(t.Value))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
