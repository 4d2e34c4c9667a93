package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/movimientos/pkg/movement"
	"tableflip.dev/movimientos/pkg/timeutil"
)

func setupEnv(t *testing.T) (storeDir, exportDir string) {
	t.Helper()
	storeDir = t.TempDir()
	exportDir = t.TempDir()
	t.Setenv("MOVIMIENTOS_CONFIG_PATH", t.TempDir())
	t.Setenv("MOVIMIENTOS_PATH", storeDir)
	t.Setenv("MOVIMIENTOS_EXPORT_DIR", exportDir)
	t.Setenv("MOVIMIENTOS_LOG_LEVEL", "off")
	oo.JSON = false
	return storeDir, exportDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLogAndHistory(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "types", "add", "Picking", "Dist. car.", "Picking")
	require.NoError(t, err)

	out, err := run(t, "types", "--json")
	require.NoError(t, err)
	var types []movement.Type
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	require.Len(t, types, 2)
	assert.Equal(t, "Dist. car.", types[0].Name)
	assert.True(t, types[0].CartZone)

	_, err = run(t, "log", "Dist. car.", "--cart", "3", "--zone", "5")
	require.NoError(t, err)
	_, err = run(t, "log", "Picking", "-c", "A-12")
	require.NoError(t, err)

	out, err = run(t, "history", "--json")
	require.NoError(t, err)
	var rows []movement.Movement
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Picking", rows[0].MovementName)
	assert.Equal(t, "A-12", rows[0].Comment)
	assert.Equal(t, "Carro:3 Zona:5", rows[1].Comment)
	assert.Greater(t, rows[0].ID, rows[1].ID)
}

func TestEditAndRemove(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "types", "add", "Picking")
	require.NoError(t, err)
	_, err = run(t, "log", "Picking", "-c", "old")
	require.NoError(t, err)

	_, err = run(t, "edit", "1")
	assert.Error(t, err, "edit without flags")

	out, err := run(t, "history", "--json")
	require.NoError(t, err)
	var rows []movement.Movement
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	id := rows[0].ID

	_, err = run(t, "edit", itoa(id), "--name", "  ", "--comment", " new ")
	require.NoError(t, err)
	out, err = run(t, "history", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, "Sin nombre", rows[0].MovementName)
	assert.Equal(t, "new", rows[0].Comment)
	assert.Equal(t, id, rows[0].ID)

	_, err = run(t, "rm", itoa(id))
	require.NoError(t, err)
	out, err = run(t, "history", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Empty(t, rows)

	_, err = run(t, "rm", "nope")
	assert.Error(t, err)
}

func TestExportToday(t *testing.T) {
	_, exportDir := setupEnv(t)
	_, err := run(t, "types", "add", "Picking")
	require.NoError(t, err)
	_, err = run(t, "log", "Picking")
	require.NoError(t, err)

	today := timeutil.DayKey(time.Now())
	out, err := run(t, "export")
	require.NoError(t, err)
	path := filepath.Join(exportDir, "movimientos_"+today+".pdf")
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = run(t, "export", "31/12/2026")
	assert.Error(t, err)
}

func TestLogUnknownType(t *testing.T) {
	setupEnv(t)
	_, err := run(t, "log", "Nada")
	assert.Error(t, err)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
