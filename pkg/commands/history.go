package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "Show the newest movements",
		Example: `
movimientos history
movimientos history -k
movimientos history --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			h := history.History{App: s.App, ShowID: io.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(h.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
