// Package record logs a movement from the command line.
package record

import (
	"context"
	"errors"
	"fmt"
	"io"

	appsvc "tableflip.dev/movimientos/pkg/app"
)

// Record logs one movement of the named type, following the same steps as
// pressing the type's button and saving the comment form.
type Record struct {
	App      *appsvc.App
	TypeName string
	Comment  string
	Cart     int
	Zone     int
	Out      io.Writer
}

func (r *Record) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("can not log, no app")
	}
	if err := r.App.Refresh(ctx); err != nil {
		return err
	}
	t, ok := r.App.TypeNamed(r.TypeName)
	if !ok {
		return fmt.Errorf("%w: no movement type named %q", appsvc.ErrInvalidInput, r.TypeName)
	}
	if (r.Cart != 0 || r.Zone != 0) && !t.RequiresCartZone() {
		return fmt.Errorf("%w: %q does not take a cart or zone", appsvc.ErrInvalidInput, t.Name)
	}

	r.App.Navigate(appsvc.ScreenHome)
	r.App.SelectType(t)
	r.App.SetComment(r.Comment)
	if err := r.App.SetCart(r.Cart); err != nil {
		return err
	}
	if err := r.App.SetZone(r.Zone); err != nil {
		return err
	}
	if err := r.App.CreateMovement(ctx); err != nil {
		return err
	}
	if r.Out != nil {
		_, _ = fmt.Fprintln(r.Out, r.App.Notice().Text)
	}
	return nil
}
