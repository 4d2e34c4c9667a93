package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativePattern = regexp.MustCompile(`^(\d+)\s*([a-z]+)$`)
	unitDays        = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ValidDayKey reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDayKey(s string) bool {
	t, err := time.ParseInLocation(LayoutDayKey, s, time.Local)
	if err != nil {
		return false
	}
	return t.Format(LayoutDayKey) == s
}

// ParseDay resolves a human day reference against now. Accepted forms are an
// explicit day-key, "today", "yesterday", or a count of days or weeks back
// such as "2d" or "1w". Empty input means today.
func ParseDay(input string, now time.Time) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	switch trimmed {
	case "", "today", "hoy":
		return DayKey(now), nil
	case "yesterday", "ayer":
		return DayKey(now.Local().AddDate(0, 0, -1)), nil
	}

	if ValidDayKey(trimmed) {
		return trimmed, nil
	}

	matches := relativePattern.FindStringSubmatch(trimmed)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid day %q, want YYYY-MM-DD, today, yesterday or a window like 2d", input)
	}
	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid day count %q: %w", matches[1], err)
	}
	per, ok := unitDays[matches[2]]
	if !ok {
		return "", fmt.Errorf("unsupported day unit %q", matches[2])
	}
	return DayKey(now.Local().AddDate(0, 0, -value*per)), nil
}
