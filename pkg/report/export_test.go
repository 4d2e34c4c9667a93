package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/movimientos/pkg/movement"
)

type fakeSource struct {
	rows []movement.Movement
	err  error
	day  string
}

func (f *fakeSource) MovementsForDay(_ context.Context, dayKey string) ([]movement.Movement, error) {
	f.day = dayKey
	if f.err != nil {
		return nil, f.err
	}
	out := make([]movement.Movement, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func TestBuildOrdersByID(t *testing.T) {
	src := &fakeSource{rows: []movement.Movement{
		{ID: 7, HHMMSS: "10:00:07", MovementName: "c"},
		{ID: 2, HHMMSS: "10:00:02", MovementName: "a"},
		{ID: 5, HHMMSS: "10:00:05", MovementName: "b"},
	}}
	e := &Exporter{Source: src}

	doc, err := e.Build(context.Background(), "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", src.day)

	var times []string
	for _, txt := range rowTexts(doc.Pages[0]) {
		times = append(times, txt.Value)
	}
	assert.Equal(t, []string{"10:00:02", "10:00:05", "10:00:07"}, times)
}

func TestBuildRejectsBadDay(t *testing.T) {
	e := &Exporter{Source: &fakeSource{}}
	_, err := e.Build(context.Background(), "16/10/2026")
	assert.Error(t, err)
}

func TestExportDayWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := &Exporter{Source: &fakeSource{rows: rowsN(3)}, Dir: dir}

	path, err := e.ExportDay(context.Background(), "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "movimientos_2026-10-16.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExportDaySourceFailureSavesNothing(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("disk gone")
	e := &Exporter{Source: &fakeSource{err: boom}, Dir: dir}

	_, err := e.ExportDay(context.Background(), "2026-10-16")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
