package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog/log"

	"tableflip.dev/movimientos/pkg/movement"
)

// Table names, kept compatible with the browser build of the app.
const (
	TypesTable     = "movementTypes"
	MovementsTable = "movements"
	tmpDir         = "_tmp"
)

// Persistence defines the persistence contract for movement types and
// movements. The two collections are independent; no operation spans both.
type Persistence interface {
	// Types returns every type ordered by name.
	Types(ctx context.Context) ([]movement.Type, error)
	// TypeByName finds a type by exact name.
	TypeByName(ctx context.Context, name string) (movement.Type, bool, error)
	AddType(ctx context.Context, t movement.Type) (int64, error)
	DeleteType(ctx context.Context, id int64) error

	AddMovement(ctx context.Context, m movement.Movement) (int64, error)
	Movement(ctx context.Context, id int64) (movement.Movement, bool, error)
	UpdateMovement(ctx context.Context, id int64, p movement.Patch) error
	DeleteMovement(ctx context.Context, id int64) error
	// RecentMovements returns up to limit movements, newest id first.
	RecentMovements(ctx context.Context, limit int) ([]movement.Movement, error)
	// MovementsForDay returns every movement with the given day-key in no
	// particular order.
	MovementsForDay(ctx context.Context, dayKey string) ([]movement.Movement, error)
	// MovementsForType returns the movements still referencing a type id.
	MovementsForType(ctx context.Context, typeID int64) ([]movement.Movement, error)

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, storageErr("open", basePath, fmt.Errorf("ensure base path: %w", err))
	}

	d := diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tmpDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes write the same files, so reads are never cached.
		CacheSizeMax: 0,
	})
	logger := log.With().Str("component", "store").Logger()

	return &persistence{
		basePath: basePath,
		types: newTable(d, TypesTable,
			func(t *movement.Type) *int64 { return &t.ID },
			logger,
			Index[movement.Type]{Name: "name", Key: func(t movement.Type) string { return t.Name }},
			Index[movement.Type]{Name: "createdAt", Key: func(t movement.Type) string { return t.CreatedAt }},
		),
		movements: newTable(d, MovementsTable,
			func(m *movement.Movement) *int64 { return &m.ID },
			logger,
			Index[movement.Movement]{Name: "movementTypeId", Key: func(m movement.Movement) string {
				return recordID(m.MovementTypeID)
			}},
			Index[movement.Movement]{Name: "dayKey", Key: func(m movement.Movement) string { return m.DayKey }},
			Index[movement.Movement]{Name: "ts", Key: func(m movement.Movement) string { return m.Ts }},
		),
	}, nil
}

type persistence struct {
	basePath  string
	types     *Table[movement.Type]
	movements *Table[movement.Movement]
}

func (p *persistence) Types(ctx context.Context) ([]movement.Type, error) {
	return p.types.OrderBy("name").ToSlice(ctx)
}

func (p *persistence) TypeByName(ctx context.Context, name string) (movement.Type, bool, error) {
	return p.types.Where("name", name).First(ctx)
}

func (p *persistence) AddType(ctx context.Context, t movement.Type) (int64, error) {
	return p.types.Add(ctx, t)
}

func (p *persistence) DeleteType(ctx context.Context, id int64) error {
	return p.types.Delete(ctx, id)
}

func (p *persistence) AddMovement(ctx context.Context, m movement.Movement) (int64, error) {
	return p.movements.Add(ctx, m)
}

func (p *persistence) Movement(ctx context.Context, id int64) (movement.Movement, bool, error) {
	return p.movements.Get(ctx, id)
}

func (p *persistence) UpdateMovement(ctx context.Context, id int64, patch movement.Patch) error {
	return p.movements.Update(ctx, id, patch.Apply)
}

func (p *persistence) DeleteMovement(ctx context.Context, id int64) error {
	return p.movements.Delete(ctx, id)
}

func (p *persistence) RecentMovements(ctx context.Context, limit int) ([]movement.Movement, error) {
	return p.movements.OrderBy(primaryKey).Reverse().Limit(limit).ToSlice(ctx)
}

func (p *persistence) MovementsForDay(ctx context.Context, dayKey string) ([]movement.Movement, error) {
	return p.movements.Where("dayKey", dayKey).ToSlice(ctx)
}

func (p *persistence) MovementsForType(ctx context.Context, typeID int64) ([]movement.Movement, error) {
	return p.movements.Where("movementTypeId", recordID(typeID)).OrderBy(primaryKey).ToSlice(ctx)
}

// ParseID parses a record id given on the command line.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
