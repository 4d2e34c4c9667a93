package record

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/store"
)

func newApp(t *testing.T, types ...string) *appsvc.App {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	require.NoError(t, err)
	a := appsvc.New(p, nil)
	for _, name := range types {
		require.NoError(t, a.CreateType(context.Background(), name))
	}
	return a
}

func TestRecordComposesCartZone(t *testing.T) {
	a := newApp(t, "Dist. car.")
	var out bytes.Buffer
	r := Record{App: a, TypeName: "dist. car.", Comment: " roto ", Cart: 7, Zone: 2, Out: &out}
	require.NoError(t, r.Do(context.Background()))

	require.Len(t, a.Movements(), 1)
	got := a.Movements()[0]
	assert.Equal(t, "Dist. car.", got.MovementName)
	assert.Equal(t, "Carro:7 Zona:2 - roto", got.Comment)
	assert.Equal(t, appsvc.ScreenHome, a.Screen())
	assert.Contains(t, out.String(), "Movimiento guardado")
}

func TestRecordRejectsUnknownType(t *testing.T) {
	a := newApp(t, "Picking")
	r := Record{App: a, TypeName: "Nope"}
	err := r.Do(context.Background())
	assert.True(t, errors.Is(err, appsvc.ErrInvalidInput), "got %v", err)
}

func TestRecordRejectsCartOnPlainType(t *testing.T) {
	a := newApp(t, "Picking")
	r := Record{App: a, TypeName: "Picking", Cart: 3}
	err := r.Do(context.Background())
	assert.True(t, errors.Is(err, appsvc.ErrInvalidInput), "got %v", err)
	assert.Empty(t, a.Movements())
}

func TestRecordRejectsOutOfRangeZone(t *testing.T) {
	a := newApp(t, "Dist. car.")
	r := Record{App: a, TypeName: "Dist. car.", Zone: 12}
	err := r.Do(context.Background())
	assert.True(t, errors.Is(err, appsvc.ErrInvalidInput), "got %v", err)
	assert.Empty(t, a.Movements())
}
