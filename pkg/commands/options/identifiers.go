package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/store"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of each record.")
}

// ParseID reads the record id given as the first argument.
func (o *IDOptions) ParseID(args []string) error {
	id, err := store.ParseID(args[0])
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}
