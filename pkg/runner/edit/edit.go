// Package edit changes the name or comment of a logged movement.
package edit

import (
	"context"
	"errors"
	"fmt"

	appsvc "tableflip.dev/movimientos/pkg/app"
)

// Edit rewrites a movement's name and comment. Nil fields keep the stored
// value. Timestamps are never touched.
type Edit struct {
	App     *appsvc.App
	ID      int64
	Name    *string
	Comment *string
}

func (e *Edit) Do(ctx context.Context) error {
	if e.App == nil {
		return errors.New("can not edit, no app")
	}
	m, ok, err := e.App.Persistence.Movement(ctx, e.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no movement with id %d", appsvc.ErrInvalidInput, e.ID)
	}

	e.App.Navigate(appsvc.ScreenHistory)
	e.App.OpenEdit(m)
	if e.Name != nil {
		e.App.SetEditName(*e.Name)
	}
	if e.Comment != nil {
		e.App.SetEditComment(*e.Comment)
	}
	return e.App.SaveEdit(ctx)
}
