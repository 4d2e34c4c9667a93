package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/movimientos/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MOVIMIENTOS_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "MOVIMIENTOS_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "MOVIMIENTOS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path:       ", n.Config.BasePath())
	fmt.Fprintln(out, "Config.export_dir: ", n.Config.ExportDir())
	fmt.Fprintln(out, "Config.log_level:  ", n.Config.LogLevel())

	if n.Persistence == nil {
		return fmt.Errorf("Failed to create persistence object.")
	}

	types, err := n.Persistence.Types(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Movement types:\n")
	for _, t := range types {
		used, err := n.Persistence.MovementsForType(ctx, t.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s (%d)\n", t.Name, len(used))
	}
	if len(types) == 0 {
		fmt.Fprintf(out, "  %s\n", "no movement types")
	}
	return nil
}
