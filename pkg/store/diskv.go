package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"
)

const (
	primaryKey = "id"
	metaDir    = "_meta"
	keySep     = "/"
)

// Index declares a field of T that can be used in OrderBy and Where.
type Index[T any] struct {
	Name string
	Key  func(T) string
}

// Table is one record collection stored as a JSON file per record under
// <base>/<name>/<id>. Ids are assigned from a per-table sequence kept under
// <base>/_meta/<name>.
type Table[T any] struct {
	name    string
	d       *diskv.Diskv
	ident   func(*T) *int64
	indexes map[string]func(T) string
	log     zerolog.Logger

	mu sync.Mutex
}

func newTable[T any](d *diskv.Diskv, name string, ident func(*T) *int64, log zerolog.Logger, indexes ...Index[T]) *Table[T] {
	t := &Table[T]{
		name:    name,
		d:       d,
		ident:   ident,
		indexes: make(map[string]func(T) string, len(indexes)),
		log:     log.With().Str("table", name).Logger(),
	}
	for _, idx := range indexes {
		t.indexes[idx.Name] = idx.Key
	}
	return t
}

// Name returns the directory name of the table.
func (t *Table[T]) Name() string {
	return t.name
}

// Add stores rec under a newly assigned id and returns that id. Any id already
// set on rec is ignored.
func (t *Table[T]) Add(ctx context.Context, rec T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	id, err := t.nextID(ctx)
	if err != nil {
		return 0, err
	}
	*t.ident(&rec) = id
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("store: encode %s: %w", t.name, err)
	}
	if err := t.d.Write(recordKey(t.name, id), data); err != nil {
		return 0, storageErr("add", t.name, err)
	}
	return id, nil
}

// Get returns the record with id, and false when there is none.
func (t *Table[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	key := recordKey(t.name, id)
	if !t.d.Has(key) {
		return zero, false, nil
	}
	rec, err := t.read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return rec, true, nil
}

// Delete removes the record with id. A missing id is not an error.
func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	key := recordKey(t.name, id)
	if !t.d.Has(key) {
		return nil
	}
	if err := t.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return storageErr("delete", t.name, err)
	}
	return nil
}

// Update applies fn to the record with id and writes it back. The id itself
// cannot be changed by fn. A missing id is not an error.
func (t *Table[T]) Update(ctx context.Context, id int64, fn func(*T)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	key := recordKey(t.name, id)
	if !t.d.Has(key) {
		return nil
	}
	rec, err := t.read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	fn(&rec)
	*t.ident(&rec) = id
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", t.name, err)
	}
	if err := t.d.Write(key, data); err != nil {
		return storageErr("update", t.name, err)
	}
	return nil
}

// OrderBy starts a query sorted ascending by field.
func (t *Table[T]) OrderBy(field string) *Query[T] {
	return (&Query[T]{t: t}).OrderBy(field)
}

// Where starts a query matching records whose field equals value.
func (t *Table[T]) Where(field, value string) *Query[T] {
	return (&Query[T]{t: t}).Where(field, value)
}

// All starts an unfiltered, unordered query.
func (t *Table[T]) All() *Query[T] {
	return &Query[T]{t: t}
}

func (t *Table[T]) fieldKey(field string) (func(T) string, error) {
	if field == primaryKey {
		return func(rec T) string {
			return recordID(*t.ident(&rec))
		}, nil
	}
	key, ok := t.indexes[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, t.name, field)
	}
	return key, nil
}

// scan reads every record of the table. Records that cannot be decoded are
// logged and skipped.
func (t *Table[T]) scan(ctx context.Context) ([]T, error) {
	if err := t.available(); err != nil {
		return nil, err
	}
	all := make([]T, 0)
	for key := range t.d.KeysPrefix(t.name+keySep, ctx.Done()) {
		if !strings.HasPrefix(key, t.name+keySep) {
			continue
		}
		rec, err := t.read(key)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			t.log.Warn().Err(err).Str("key", key).Msg("skipping unreadable record")
			continue
		}
		all = append(all, rec)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return all, nil
}

func (t *Table[T]) read(key string) (T, error) {
	var rec T
	val, err := t.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rec, err
		}
		return rec, storageErr("read", t.name, err)
	}
	if err := json.Unmarshal(val, &rec); err != nil {
		return rec, fmt.Errorf("store: decode %s: %w", key, err)
	}
	if id, ok := keyID(key); ok {
		*t.ident(&rec) = id
	}
	return rec, nil
}

// available fails when the base directory exists but cannot be listed. A base
// that does not exist yet is simply empty.
func (t *Table[T]) available() error {
	f, err := os.Open(t.d.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return storageErr("scan", t.name, err)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return storageErr("scan", t.name, err)
	}
	return nil
}

// nextID advances the table sequence. The sequence is re-read from disk on
// every call so separate processes sharing the store do not hand out the same
// id. A missing sequence is rebuilt from the highest stored id.
func (t *Table[T]) nextID(ctx context.Context) (int64, error) {
	key := seqKey(t.name)
	var current int64
	if t.d.Has(key) {
		rc, err := t.d.ReadStream(key, true)
		if err != nil {
			return 0, storageErr("sequence", t.name, err)
		}
		raw, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return 0, storageErr("sequence", t.name, err)
		}
		current, err = strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			t.log.Warn().Err(err).Msg("rebuilding corrupt sequence")
			current = 0
		}
	}
	if current == 0 {
		highest, err := t.highestID(ctx)
		if err != nil {
			return 0, err
		}
		current = highest
	}

	next := current + 1
	if err := t.d.Write(key, []byte(strconv.FormatInt(next, 10))); err != nil {
		return 0, storageErr("sequence", t.name, err)
	}
	return next, nil
}

func (t *Table[T]) highestID(ctx context.Context) (int64, error) {
	if err := t.available(); err != nil {
		return 0, err
	}
	var highest int64
	for key := range t.d.KeysPrefix(t.name+keySep, ctx.Done()) {
		if id, ok := keyID(key); ok && id > highest {
			highest = id
		}
	}
	return highest, nil
}

func sortRecords[T any](recs []T, key func(T) string, id func(*T) *int64) {
	sort.SliceStable(recs, func(i, j int) bool {
		ki, kj := key(recs[i]), key(recs[j])
		if ki == kj {
			return *id(&recs[i]) < *id(&recs[j])
		}
		return ki < kj
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, keySep)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, keySep) + keySep + pathKey.FileName
}

// recordKey makes `table/000000000042`; padding keeps file order equal to id
// order.
func recordKey(table string, id int64) string {
	return table + keySep + recordID(id)
}

func recordID(id int64) string {
	return fmt.Sprintf("%012d", id)
}

func seqKey(table string) string {
	return metaDir + keySep + table
}

func keyID(key string) (int64, bool) {
	pk := keyToPathTransform(key)
	id, err := strconv.ParseInt(pk.FileName, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
