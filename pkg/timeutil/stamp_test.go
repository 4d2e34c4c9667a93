package timeutil

import (
	"testing"
	"time"
)

func TestStampAtSingleInstant(t *testing.T) {
	at := time.Date(2026, time.October, 16, 23, 59, 59, 999_000_000, time.Local)
	s := StampAt(at)
	if s.DayKey != "2026-10-16" {
		t.Fatalf("expected day-key 2026-10-16, got %s", s.DayKey)
	}
	if s.HHMMSS != "23:59:59" {
		t.Fatalf("expected 23:59:59, got %s", s.HHMMSS)
	}
	parsed, err := time.Parse(LayoutTimestamp, s.Ts)
	if err != nil {
		t.Fatalf("timestamp %q does not parse: %v", s.Ts, err)
	}
	if !parsed.Equal(at) {
		t.Fatalf("timestamp %q does not round-trip to %v", s.Ts, at)
	}
}

func TestFormatTimestampUTC(t *testing.T) {
	at := time.Date(2026, time.January, 2, 3, 4, 5, 6_000_000, time.UTC)
	if got, want := FormatTimestamp(at), "2026-01-02T03:04:05.006Z"; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestValidDayKey(t *testing.T) {
	for _, s := range []string{"2026-10-16", "2024-02-29"} {
		if !ValidDayKey(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "2026-10-6", "2023-02-29", "16/10/2026", "2026-13-01"} {
		if ValidDayKey(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestParseDay(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.Local)
	tests := map[string]string{
		"":           "2026-10-16",
		"today":      "2026-10-16",
		" Yesterday": "2026-10-15",
		"2d":         "2026-10-14",
		"1w":         "2026-10-09",
		"2026-01-31": "2026-01-31",
	}
	for in, want := range tests {
		got, err := ParseDay(in, now)
		if err != nil {
			t.Fatalf("ParseDay(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDay(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseDayInvalid(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"noop", "3x", "2026-02-30"} {
		if _, err := ParseDay(in, now); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
