package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a movement",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a movement id")
			}
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			r := remove.Remove{App: s.App, ID: io.ID}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
