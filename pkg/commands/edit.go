package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name or comment of a movement",
		Example: `
movimientos edit 12 --comment "A-14"
movimientos edit 12 --name Picking
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a movement id")
			}
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, comment := eo.Values(cmd)
			if name == nil && comment == nil {
				return errors.New("nothing to change, set --name or --comment")
			}
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			e := edit.Edit{App: s.App, ID: io.ID, Name: name, Comment: comment}
			return e.Do(cmd.Context())
		},
	}

	options.AddEditArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
