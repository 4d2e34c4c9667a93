// Package remove deletes a logged movement.
package remove

import (
	"context"
	"errors"

	appsvc "tableflip.dev/movimientos/pkg/app"
)

// Remove deletes a movement by id. Unknown ids are not an error.
type Remove struct {
	App *appsvc.App
	ID  int64
}

func (r *Remove) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("can not remove, no app")
	}
	r.App.Navigate(appsvc.ScreenHistory)
	return r.App.DeleteMovement(ctx, r.ID)
}
