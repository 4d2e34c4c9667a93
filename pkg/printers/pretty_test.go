package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/movimientos/pkg/movement"
)

func init() {
	color.NoColor = true
}

func TestMovementsTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{ShowID: true, Out: &buf}
	pp.Movements(
		movement.Movement{ID: 12, MovementName: "Picking", Comment: "A-12", HHMMSS: "09:15:00", DayKey: "2026-03-03"},
		movement.Movement{ID: 3, MovementName: "Dist. car.", Comment: "Carro:3", HHMMSS: "10:00:01", DayKey: "2026-03-03"},
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "12  2026-03-03 09:15:00  Picking") {
		t.Errorf("unexpected first row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 3  ") {
		t.Errorf("ids should be right aligned, got %q", lines[1])
	}
}

func TestTypesMarksCartZone(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Types(movement.Type{Name: "Dist. car."}, movement.Type{Name: "Picking"})

	out := buf.String()
	if !strings.Contains(out, "Dist. car.  cart/zone") {
		t.Errorf("missing cart/zone marker:\n%s", out)
	}
	if strings.Contains(strings.SplitN(out, "\n", 3)[1], "cart/zone") {
		t.Errorf("plain type should not be marked:\n%s", out)
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Movements()
	if got := buf.String(); got != " none\n\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.TitleWithCount("2026-03-03", 1)
	if got := buf.String(); got != "2026-03-03 - 1 movimiento\n" {
		t.Errorf("unexpected output %q", got)
	}
}
