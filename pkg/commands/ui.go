package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.ScreenOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
movimientos ui
movimientos ui --screen history
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := so.Screen()
			if err != nil {
				return err
			}
			s, err := load(true)
			if err != nil {
				return err
			}
			defer s.Close()

			i := ui.UI{App: s.App, Screen: screen, Watch: s.Config.Watch()}
			return i.Do(cmd.Context())
		},
	}

	options.AddScreenArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("screen", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"home", "manage", "history", "pdf"}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
