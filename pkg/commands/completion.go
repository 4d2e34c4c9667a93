package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(movimientos completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(movimientos completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func typeCompletions() []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	types, err := p.Types(context.Background())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names
}
