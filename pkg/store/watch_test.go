package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/movimientos/pkg/movement"
)

func TestPersistenceWatchEmitsTableChanges(t *testing.T) {
	p := newTestPersistence(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if _, err := p.AddType(ctx, movement.Type{Name: "Entradas"}); err != nil {
		t.Fatalf("add type: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Table == "" || evt.Table == TypesTable {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for table change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p := newTestPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}

func TestTableForPath(t *testing.T) {
	p := &persistence{basePath: "/data"}
	tests := map[string]string{
		"/data/movements/000000000001":     MovementsTable,
		"/data/movementTypes/000000000002": TypesTable,
		"/data/_meta/movements":            "",
		"/data/_tmp/diskv-123":             "",
		"/data":                            "",
	}
	for path, want := range tests {
		got, ok := p.tableForPath(path)
		if want == "" {
			if ok {
				t.Errorf("tableForPath(%q) = %q, expected no table", path, got)
			}
			continue
		}
		if !ok || got != want {
			t.Errorf("tableForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
