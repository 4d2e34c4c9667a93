// Package report renders one day of movements as a printable PDF.
//
// Rendering happens in two steps. Layout turns movements into a Document, a
// list of pages holding text placed at absolute millimetre offsets on A4.
// Render draws a Document with gofpdf. Keeping the placement pure lets the
// pagination and truncation rules be checked without decoding a PDF.
package report

import (
	"sort"

	"tableflip.dev/movimientos/pkg/movement"
)

// Page geometry in millimetres.
const (
	ColTime    = 10.0
	ColName    = 30.0
	ColComment = 90.0
	RuleEndX   = 200.0

	TitleY     = 12.0
	HeaderY    = 22.0
	RowStep    = 6.0
	PageBottom = 285.0
	PageTop    = 20.0

	TitleSize = 14.0
	BodySize  = 10.0
)

// Column limits, counted in characters.
const (
	MaxName    = 28
	MaxComment = 60
	Ellipsis   = "..."
)

// Header labels, left to right.
var Header = [3]string{"Hora", "Movimiento", "Comentario"}

// Text is a string drawn with its baseline at (X, Y).
type Text struct {
	X, Y  float64
	Size  float64
	Value string
}

// Rule is a straight line segment.
type Rule struct {
	X1, Y1, X2, Y2 float64
}

// Page holds everything placed on one sheet.
type Page struct {
	Texts []Text
	Rules []Rule
}

// Document is a laid-out report ready to render.
type Document struct {
	Title string
	Pages []Page
	Rows  int
}

// Title returns the report heading for dayKey.
func Title(dayKey string) string {
	return "Registro de movimientos - " + dayKey
}

// FileName returns the download name of the report for dayKey.
func FileName(dayKey string) string {
	return "movimientos_" + dayKey + ".pdf"
}

// SortByID orders rows by creation, oldest first.
func SortByID(rows []movement.Movement) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ID < rows[j].ID
	})
}

// Layout places the title, column header, separator and one line per row.
// Rows keep the order given. When the cursor passes PageBottom a new page is
// started at PageTop before placing the row.
func Layout(dayKey string, rows []movement.Movement) Document {
	title := Title(dayKey)
	doc := Document{Title: title, Rows: len(rows)}

	page := Page{}
	page.Texts = append(page.Texts, Text{X: ColTime, Y: TitleY, Size: TitleSize, Value: title})

	y := HeaderY
	page.Texts = append(page.Texts,
		Text{X: ColTime, Y: y, Size: BodySize, Value: Header[0]},
		Text{X: ColName, Y: y, Size: BodySize, Value: Header[1]},
		Text{X: ColComment, Y: y, Size: BodySize, Value: Header[2]},
	)
	y += RowStep
	page.Rules = append(page.Rules, Rule{X1: ColTime, Y1: y, X2: RuleEndX, Y2: y})
	y += RowStep

	for _, r := range rows {
		if y > PageBottom {
			doc.Pages = append(doc.Pages, page)
			page = Page{}
			y = PageTop
		}
		page.Texts = append(page.Texts,
			Text{X: ColTime, Y: y, Size: BodySize, Value: r.HHMMSS},
			Text{X: ColName, Y: y, Size: BodySize, Value: Truncate(r.MovementName, MaxName)},
			Text{X: ColComment, Y: y, Size: BodySize, Value: Ellipsize(r.Comment, MaxComment)},
		)
		y += RowStep
	}

	doc.Pages = append(doc.Pages, page)
	return doc
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Ellipsize cuts s longer than n characters to n-3 characters followed by
// Ellipsis, so the result is exactly n characters.
func Ellipsize(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	keep := n - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(r[:keep]) + Ellipsis
}
