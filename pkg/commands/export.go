package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:     "export [day]",
		Aliases: []string{"pdf"},
		Short:   "Export the movements of a day as a PDF",
		Long: options.Wrap80(`Export the movements of a day as movimientos_<day>.pdf. The day is YYYY-MM-DD, today, yesterday or a window back such as 2d or 1w. It defaults to today.`),
		Example: `
movimientos export
movimientos export yesterday --dir ~/Desktop
movimientos export 2026-03-03 --stdout > dia.pdf
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many days, export one at a time")
			}
			return do.Resolve(args, time.Now())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()
			if do.Dir != "" {
				s.Exporter.Dir = do.Dir
			}

			e := export.Export{
				App:      s.App,
				Exporter: s.Exporter,
				Day:      do.Day,
				Stdout:   do.Stdout,
				Out:      cmd.OutOrStdout(),
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddDayArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
