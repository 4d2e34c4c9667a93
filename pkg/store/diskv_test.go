package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/movimientos/pkg/movement"
)

func newTestPersistence(t *testing.T) *persistence {
	t.Helper()
	p, err := Load(StaticConfig{Path: t.TempDir()})
	require.NoError(t, err)
	return p.(*persistence)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	for i, name := range []string{"Picking", "Entradas", "Dist. car."} {
		id, err := p.AddType(ctx, movement.Type{ID: 99, Name: name})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	types, err := p.Types(ctx)
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, []string{"Dist. car.", "Entradas", "Picking"}, []string{types[0].Name, types[1].Name, types[2].Name})
	assert.Equal(t, int64(3), types[0].ID)
}

func TestSequenceSurvivesReloadAndDelete(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	_, err = p.AddMovement(ctx, movement.Movement{MovementName: "a", DayKey: "2026-10-16"})
	require.NoError(t, err)
	id2, err := p.AddMovement(ctx, movement.Movement{MovementName: "b", DayKey: "2026-10-16"})
	require.NoError(t, err)
	require.NoError(t, p.DeleteMovement(ctx, id2))

	reloaded, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	id3, err := reloaded.AddMovement(ctx, movement.Movement{MovementName: "c", DayKey: "2026-10-16"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id3, "ids are never reused")
}

func TestSequenceRebuiltFromRecords(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := p.AddType(ctx, movement.Type{Name: fmt.Sprintf("t%d", i)})
		require.NoError(t, err)
	}
	require.NoError(t, os.Remove(filepath.Join(base, metaDir, TypesTable)))

	id, err := p.AddType(ctx, movement.Type{Name: "next"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestDeleteAndUpdateMissingAreNoops(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	assert.NoError(t, p.DeleteMovement(ctx, 42))
	assert.NoError(t, p.DeleteType(ctx, 42))
	name := "x"
	assert.NoError(t, p.UpdateMovement(ctx, 42, movement.Patch{MovementName: &name}))

	_, ok, err := p.Movement(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateMovementPatchesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	orig := movement.Movement{
		MovementTypeID: 7,
		MovementName:   "Picking",
		Comment:        "A-12",
		Ts:             "2026-10-16T08:00:00.000Z",
		HHMMSS:         "10:00:00",
		DayKey:         "2026-10-16",
	}
	id, err := p.AddMovement(ctx, orig)
	require.NoError(t, err)

	comment := "A-13"
	require.NoError(t, p.UpdateMovement(ctx, id, movement.Patch{Comment: &comment}))

	got, ok, err := p.Movement(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	orig.ID = id
	orig.Comment = "A-13"
	assert.Equal(t, orig, got)
}

func TestRecentMovementsNewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	for i := 0; i < 90; i++ {
		_, err := p.AddMovement(ctx, movement.Movement{MovementName: fmt.Sprintf("m%d", i), DayKey: "2026-10-16"})
		require.NoError(t, err)
	}

	recent, err := p.RecentMovements(ctx, 80)
	require.NoError(t, err)
	require.Len(t, recent, 80)
	assert.Equal(t, int64(90), recent[0].ID)
	assert.Equal(t, int64(11), recent[79].ID)
}

func TestMovementsForDayAndType(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)

	add := func(typeID int64, day string) {
		_, err := p.AddMovement(ctx, movement.Movement{MovementTypeID: typeID, MovementName: "n", DayKey: day})
		require.NoError(t, err)
	}
	add(1, "2026-10-15")
	add(2, "2026-10-16")
	add(1, "2026-10-16")
	add(12, "2026-10-16")

	day, err := p.MovementsForDay(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.Len(t, day, 3)
	for _, m := range day {
		assert.Equal(t, "2026-10-16", m.DayKey)
	}

	byType, err := p.MovementsForType(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, []int64{1, 3}, []int64{byType[0].ID, byType[1].ID})
}

func TestTypeByNameIsExact(t *testing.T) {
	ctx := context.Background()
	p := newTestPersistence(t)
	_, err := p.AddType(ctx, movement.Type{Name: "Dist. car."})
	require.NoError(t, err)

	_, ok, err := p.TypeByName(ctx, "dist. car.")
	require.NoError(t, err)
	assert.False(t, ok)

	found, ok, err := p.TypeByName(ctx, "Dist. car.")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), found.ID)
}

func TestUnknownIndex(t *testing.T) {
	p := newTestPersistence(t)
	_, err := p.movements.OrderBy("comment").ToSlice(context.Background())
	assert.True(t, errors.Is(err, ErrUnknownIndex))
}

func TestUndecodableRecordsAreSkipped(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	_, err = p.AddType(ctx, movement.Type{Name: "ok"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(base, TypesTable, recordID(50)), []byte("{nope"), 0o644))

	types, err := p.Types(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "ok", types[0].Name)
}

func TestStorageErrorIsUnavailable(t *testing.T) {
	err := storageErr("add", MovementsTable, os.ErrPermission)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(err, os.ErrPermission))

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "add", se.Op)
}

func TestWriteFailureIsStorageError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	ctx := context.Background()
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	_, err = p.AddType(ctx, movement.Type{Name: "first"})
	require.NoError(t, err)

	require.NoError(t, os.Chmod(filepath.Join(base, TypesTable), 0o500))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(base, TypesTable), 0o755) })

	_, err = p.AddType(ctx, movement.Type{Name: "second"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
