package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"tableflip.dev/movimientos/pkg/movement"
	"tableflip.dev/movimientos/pkg/timeutil"
)

// Source supplies the movements of one day, in any order.
type Source interface {
	MovementsForDay(ctx context.Context, dayKey string) ([]movement.Movement, error)
}

// Exporter builds day reports from Source and saves them in Dir.
type Exporter struct {
	Source Source
	Dir    string
}

// Build loads every movement of dayKey, orders them by id and lays them out.
func (e *Exporter) Build(ctx context.Context, dayKey string) (Document, error) {
	if !timeutil.ValidDayKey(dayKey) {
		return Document{}, fmt.Errorf("report: invalid day %q", dayKey)
	}
	if e.Source == nil {
		return Document{}, fmt.Errorf("report: no source configured")
	}
	rows, err := e.Source.MovementsForDay(ctx, dayKey)
	if err != nil {
		return Document{}, fmt.Errorf("report: load %s: %w", dayKey, err)
	}
	SortByID(rows)
	return Layout(dayKey, rows), nil
}

// Bytes builds and renders the report for dayKey.
func (e *Exporter) Bytes(ctx context.Context, dayKey string) ([]byte, error) {
	doc, err := e.Build(ctx, dayKey)
	if err != nil {
		return nil, err
	}
	return Render(doc)
}

// ExportDay renders the report for dayKey and saves it as FileName(dayKey) in
// Dir, returning the saved path. The file appears only once complete.
func (e *Exporter) ExportDay(ctx context.Context, dayKey string) (string, error) {
	data, err := e.Bytes(ctx, dayKey)
	if err != nil {
		return "", err
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: ensure export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(dayKey))
	if err := writeAtomic(path, data); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}

	log.Info().Str("component", "report").Str("day", dayKey).Str("path", path).Int("bytes", len(data)).Msg("report saved")
	return path, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".movimientos-*.pdf")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}
