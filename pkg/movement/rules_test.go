package movement

import "testing"

func TestIsCartZoneType(t *testing.T) {
	tests := map[string]bool{
		"Dist. car.":     true,
		"Dist. Car.":     true,
		"  dist. car.  ": true,
		"DIST. CAR.":     true,
		"dist car":       false,
		"dist. car":      false,
		"Dist. car. 2":   false,
		"":               false,
	}
	for name, want := range tests {
		if got := IsCartZoneType(name); got != want {
			t.Errorf("IsCartZoneType(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestComposeComment(t *testing.T) {
	tests := []struct {
		raw        string
		cart, zone int
		want       string
	}{
		{raw: "", cart: 3, zone: 5, want: "Carro:3 Zona:5"},
		{raw: "broken box", cart: 3, want: "Carro:3 - broken box"},
		{raw: "note", want: "note"},
		{raw: "  note  ", zone: 11, want: "Zona:11 - note"},
		{raw: "   ", cart: 26, want: "Carro:26"},
		{raw: "", want: ""},
		{raw: "  ", want: ""},
	}
	for _, tt := range tests {
		if got := ComposeComment(tt.raw, tt.cart, tt.zone); got != tt.want {
			t.Errorf("ComposeComment(%q, %d, %d) = %q, want %q", tt.raw, tt.cart, tt.zone, got, tt.want)
		}
	}
}

func TestRequiresCartZone(t *testing.T) {
	if !(Type{Name: " dist. CAR. "}).RequiresCartZone() {
		t.Fatalf("expected name match without flag")
	}
	if !(Type{Name: "Carros", CartZone: true}).RequiresCartZone() {
		t.Fatalf("expected flagged type to require cart/zone")
	}
	if (Type{Name: "Entradas"}).RequiresCartZone() {
		t.Fatalf("plain type must not require cart/zone")
	}
}

func TestValidCartZone(t *testing.T) {
	for _, n := range []int{0, 1, 26} {
		if !ValidCart(n) {
			t.Errorf("cart %d should be valid", n)
		}
	}
	for _, n := range []int{-1, 27} {
		if ValidCart(n) {
			t.Errorf("cart %d should be invalid", n)
		}
	}
	if !ValidZone(11) || ValidZone(12) {
		t.Fatalf("zone bounds wrong")
	}
}

func TestEditedName(t *testing.T) {
	if got := EditedName("   "); got != "Sin nombre" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := EditedName("  Picking "); got != "Picking" {
		t.Fatalf("expected trimmed, got %q", got)
	}
}

func TestPatchApply(t *testing.T) {
	m := Movement{ID: 4, MovementName: "A", Comment: "c", Ts: "ts", HHMMSS: "10:00:00", DayKey: "2026-10-16"}
	name := "B"
	Patch{MovementName: &name}.Apply(&m)
	if m.MovementName != "B" || m.Comment != "c" || m.Ts != "ts" {
		t.Fatalf("unexpected movement after patch: %+v", m)
	}
}
