// Package timeutil derives the timestamps stored on movements and parses the
// day-keys used to group them.
package timeutil

import "time"

const (
	// LayoutDayKey formats the local-date partition key of a movement.
	LayoutDayKey = "2006-01-02"
	// LayoutClock formats the local time of day shown next to a movement.
	LayoutClock = "15:04:05"
	// LayoutTimestamp is ISO-8601 in UTC with millisecond precision.
	LayoutTimestamp = "2006-01-02T15:04:05.000Z07:00"
)

// Stamp is the set of time strings recorded when a movement is created.
type Stamp struct {
	Ts     string
	HHMMSS string
	DayKey string
}

// StampAt derives every field of a Stamp from the single instant t, so the
// day-key and clock never straddle midnight.
func StampAt(t time.Time) Stamp {
	local := t.Local()
	return Stamp{
		Ts:     FormatTimestamp(t),
		HHMMSS: local.Format(LayoutClock),
		DayKey: local.Format(LayoutDayKey),
	}
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(LayoutTimestamp)
}

// DayKey returns the local day-key of t.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDayKey)
}
