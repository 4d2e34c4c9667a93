// Package ui launches the terminal interface.
package ui

import (
	"context"
	"errors"

	appsvc "tableflip.dev/movimientos/pkg/app"
	teaui "tableflip.dev/movimientos/pkg/tui/app"
)

// UI opens the terminal interface on Screen.
type UI struct {
	App    *appsvc.App
	Screen appsvc.Screen
	Watch  bool
}

func (u *UI) Do(ctx context.Context) error {
	if u.App == nil {
		return errors.New("can not open ui, no app")
	}
	if err := u.App.Refresh(ctx); err != nil {
		return err
	}
	u.App.Navigate(u.Screen)
	return teaui.Run(u.App, teaui.Options{Watch: u.Watch})
}
