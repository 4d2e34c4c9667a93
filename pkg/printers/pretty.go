package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/movimientos/pkg/movement"
)

// PrettyPrint writes types and movements as aligned, colored tables.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " movimiento")
	default:
		_, _ = c.Fprintln(pp.out(), " movimientos")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Types lists movement types, flagging the ones that collect cart and zone.
func (pp *PrettyPrint) Types(types ...movement.Type) {
	if len(types) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range types {
		extra := ""
		if t.RequiresCartZone() {
			extra = f.Sprint("cart/zone")
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(t.ID), t.Name, extra)
		} else {
			tbl.AddRow(t.Name, extra)
		}
	}
	if pp.ShowID {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Movements lists movements in the order given.
func (pp *PrettyPrint) Movements(rows ...movement.Movement) {
	if len(rows) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	when := color.New(color.FgCyan)
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, m := range rows {
		cells := []interface{}{
			when.Sprint(strings.TrimSpace(m.DayKey + " " + m.HHMMSS)),
			bold.Sprint(m.MovementName),
			m.Comment,
		}
		if pp.ShowID {
			cells = append([]interface{}{y.Sprint(m.ID)}, cells...)
		}
		tbl.AddRow(cells...)
	}
	if pp.ShowID {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
