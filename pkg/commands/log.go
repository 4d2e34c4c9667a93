package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/record"
)

func addLog(topLevel *cobra.Command) {
	mo := &options.MovementOptions{}

	cmd := &cobra.Command{
		Use:   "log <type>",
		Short: "Log a movement now",
		Example: `
movimientos log Picking --comment "A-12"
movimientos log "Dist. car." --cart 3 --zone 5
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a movement type")
			}
			return nil
		},
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return typeCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			r := record.Record{
				App:      s.App,
				TypeName: strings.Join(args, " "),
				Comment:  mo.Comment,
				Cart:     mo.Cart,
				Zone:     mo.Zone,
				Out:      cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMovementArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
