package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/movement"
)

// MovementOptions carries the comment form of the log command.
type MovementOptions struct {
	Comment string
	Cart    int
	Zone    int
}

func AddMovementArgs(cmd *cobra.Command, o *MovementOptions) {
	cmd.Flags().StringVarP(&o.Comment, "comment", "c", "",
		"Free-text comment.")
	cmd.Flags().IntVar(&o.Cart, "cart", 0,
		Wrap80(fmt.Sprintf("Cart number %d-%d, only for %q types.", movement.CartMin, movement.CartMax, "Dist. car.")))
	cmd.Flags().IntVar(&o.Zone, "zone", 0,
		Wrap80(fmt.Sprintf("Zone number %d-%d, only for %q types.", movement.ZoneMin, movement.ZoneMax, "Dist. car.")))
}

// EditOptions carries the edit form. Unset flags keep the stored value.
type EditOptions struct {
	Name    string
	Comment string
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New movement name. Blank becomes \"Sin nombre\".")
	cmd.Flags().StringVarP(&o.Comment, "comment", "c", "",
		"New comment.")
}

// Values returns pointers to the flags that were set on cmd.
func (o *EditOptions) Values(cmd *cobra.Command) (name, comment *string) {
	if cmd.Flags().Changed("name") {
		name = &o.Name
	}
	if cmd.Flags().Changed("comment") {
		comment = &o.Comment
	}
	return name, comment
}
