// Package history prints the newest movements.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/printers"
)

// History prints up to appsvc.HistoryLimit movements, newest first.
type History struct {
	App    *appsvc.App
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (h *History) Do(ctx context.Context) error {
	if h.App == nil {
		return errors.New("can not show history, no app")
	}
	if err := h.App.Refresh(ctx); err != nil {
		return err
	}
	out := h.Out
	if out == nil {
		out = color.Output
	}
	rows := h.App.Movements()
	if h.JSON {
		return json.NewEncoder(out).Encode(rows)
	}
	pp := printers.PrettyPrint{ShowID: h.ShowID, Out: out}
	pp.TitleWithCount("History", len(rows))
	pp.Movements(rows...)
	return nil
}
