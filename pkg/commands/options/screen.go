package options

import (
	"github.com/spf13/cobra"

	appsvc "tableflip.dev/movimientos/pkg/app"
)

// ScreenOptions picks the first screen of the UI.
type ScreenOptions struct {
	Name string
}

func AddScreenArgs(cmd *cobra.Command, o *ScreenOptions) {
	cmd.Flags().StringVar(&o.Name, "screen", "home",
		"Screen to open: home, manage, history or pdf.")
}

// Screen parses the flag. Only top-bar screens are accepted.
func (o *ScreenOptions) Screen() (appsvc.Screen, error) {
	s, err := appsvc.ParseScreen(o.Name)
	if err != nil {
		return appsvc.ScreenHome, err
	}
	if !s.Navigable() {
		return appsvc.ScreenHome, appsvc.ErrInvalidInput
	}
	return s, nil
}
