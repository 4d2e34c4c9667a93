package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings read from .movimientos.yaml and the
// MOVIMIENTOS_* environment.
type Config interface {
	BasePath() string
	ExportDir() string
	LogLevel() string
	LogFormat() string
	Watch() bool
}

// LoadConfig walks $MOVIMIENTOS_CONFIG_PATH and the working directory for a
// .movimientos.yaml file. A missing file is fine; defaults apply.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.movimientos")
	v.SetDefault("export_dir", ".")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("watch", true)
	v.SetConfigName(".movimientos") // .yaml is implicit
	v.SetEnvPrefix("MOVIMIENTOS")
	v.AutomaticEnv()

	if override := os.Getenv("MOVIMIENTOS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	exportDir, err := homedir.Expand(v.GetString("export_dir"))
	if err != nil {
		return nil, fmt.Errorf("store: expand export_dir: %w", err)
	}

	return &fileConfig{
		Path:   base,
		Export: exportDir,
		Level:  v.GetString("log_level"),
		Format: v.GetString("log_format"),
		Notify: v.GetBool("watch"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Export string `json:"export_dir"`
	Level  string `json:"log_level"`
	Format string `json:"log_format"`
	Notify bool   `json:"watch"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) ExportDir() string { return f.Export }
func (f *fileConfig) LogLevel() string  { return f.Level }
func (f *fileConfig) LogFormat() string { return f.Format }
func (f *fileConfig) Watch() bool       { return f.Notify }

// StaticConfig is a Config built in code, used by tests and callers that
// already know their paths.
type StaticConfig struct {
	Path   string
	Export string
	Level  string
	Format string
	Notify bool
}

func (s StaticConfig) BasePath() string  { return s.Path }
func (s StaticConfig) ExportDir() string { return s.Export }
func (s StaticConfig) LogLevel() string  { return s.Level }
func (s StaticConfig) LogFormat() string { return s.Format }
func (s StaticConfig) Watch() bool       { return s.Notify }
