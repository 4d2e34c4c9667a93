package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/movimientos/pkg/timeutil"
)

// DayOptions selects the day of a report and where it goes.
type DayOptions struct {
	Day    string
	Dir    string
	Stdout bool
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.Dir, "dir", "",
		"Directory for the PDF. Defaults to export_dir from config.")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false,
		"Write the PDF to stdout instead of a file.")
}

// Resolve turns the positional day argument into a day-key.
func (o *DayOptions) Resolve(args []string, now time.Time) error {
	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	day, err := timeutil.ParseDay(input, now)
	if err != nil {
		return err
	}
	o.Day = day
	return nil
}
