package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/commands/options"
	"tableflip.dev/movimientos/pkg/logger"
	"tableflip.dev/movimientos/pkg/report"
	"tableflip.dev/movimientos/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "movimientos",
		Short: options.Wrap80("Log warehouse movements with one key press and export each day as a PDF."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTypes(topLevel)
	addLog(topLevel)
	addHistory(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addExport(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// session is everything a command needs to drive the app.
type session struct {
	Config      store.Config
	Persistence store.Persistence
	Exporter    *report.Exporter
	App         *appsvc.App
	Log         zerolog.Logger
	logFile     *os.File
}

func (s *session) Close() {
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// load reads the config, sets up logging and opens the store. With toFile
// set, logs go to movimientos.log inside the store so they do not paint over
// the terminal UI.
func load(toFile bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{Config: cfg}
	opts := logger.Options{Level: cfg.LogLevel(), Format: cfg.LogFormat()}
	if toFile {
		if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(filepath.Join(cfg.BasePath(), "movimientos.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		s.logFile = f
		opts.Out = f
	}
	s.Log = logger.New(opts)

	p, err := store.Load(cfg)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Persistence = p
	s.Exporter = &report.Exporter{Source: p, Dir: cfg.ExportDir()}
	s.App = appsvc.New(p, s.Exporter)
	s.App.Log = s.Log.With().Str("component", "app").Logger()
	return s, nil
}
