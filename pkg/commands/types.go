package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/types"
)

func addTypes(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "types",
		Aliases: []string{"type", "buttons"},
		Short:   "List movement types",
		Example: `
movimientos types
movimientos types --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			l := types.List{App: s.App, ShowID: io.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	cmd.AddCommand(newTypesAddCmd(), newTypesRemoveCmd())
	topLevel.AddCommand(cmd)
}

func newTypesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Add one movement type per argument",
		Example: `
movimientos types add Picking "Dist. car." "Ubicar palet"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a type name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			a := types.Add{App: s.App, Names: args, Out: cmd.OutOrStdout()}
			return a.Do(cmd.Context())
		},
	}
}

func newTypesRemoveCmd() *cobra.Command {
	io := &options.IDOptions{}
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a movement type, keeping its movements",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a type id")
			}
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			r := types.Remove{App: s.App, ID: io.ID}
			return r.Do(cmd.Context())
		},
	}
}
