// Package types lists, adds and removes movement types.
package types

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/printers"
)

// List prints every type.
type List struct {
	App    *appsvc.App
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.App == nil {
		return errors.New("can not list, no app")
	}
	if err := l.App.Refresh(ctx); err != nil {
		return err
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.JSON {
		return json.NewEncoder(out).Encode(l.App.Types())
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID, Out: out}
	pp.Title("Movement types")
	pp.Types(l.App.Types()...)
	return nil
}

// Add creates one type per name. Blank and existing names are skipped.
type Add struct {
	App   *appsvc.App
	Names []string
	Out   io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	if a.App == nil {
		return errors.New("can not add, no app")
	}
	if err := a.App.Refresh(ctx); err != nil {
		return err
	}
	a.App.Navigate(appsvc.ScreenManage)
	for _, name := range a.Names {
		before := len(a.App.Types())
		if err := a.App.CreateType(ctx, name); err != nil {
			return err
		}
		if len(a.App.Types()) > before && a.Out != nil {
			_, _ = fmt.Fprintln(a.Out, a.App.Notice().Text)
		}
	}
	return nil
}

// Remove deletes a type by id. Movements logged with it are kept.
type Remove struct {
	App *appsvc.App
	ID  int64
}

func (r *Remove) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("can not remove, no app")
	}
	r.App.Navigate(appsvc.ScreenManage)
	return r.App.DeleteType(ctx, r.ID)
}
