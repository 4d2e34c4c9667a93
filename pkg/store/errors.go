package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable matches every StorageError via errors.Is.
	ErrUnavailable = errors.New("store: storage unavailable")
	// ErrUnknownIndex is returned when a query names a field that was not
	// declared as an index on the table.
	ErrUnknownIndex = errors.New("store: unknown index")
)

// StorageError reports a failure of the backing medium during Op on Table.
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUnavailable) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrUnavailable
}

func storageErr(op, table string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Table: table, Err: err}
}
