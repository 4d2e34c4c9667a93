package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where movements are stored.",
		Example: `
movimientos info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config:      s.Config,
				Persistence: s.Persistence,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
