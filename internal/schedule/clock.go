// Package schedule contains the pure scheduling core: event indexing,
// time-band classification, availability, slot merging, conflict
// resolution and roster reconciliation. Everything in this package is
// side-effect free and total over well-typed input; malformed fields
// degrade via documented defaults instead of returning errors upward.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time expressed as minutes since midnight,
// so that adding preparation buffers and comparing event edges is
// plain integer arithmetic.
type Clock int

// ParseClock parses an "HH:MM" (24h) string.
func ParseClock(s string) (Clock, error) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return Clock(h*60 + m), nil
}

// ParseClockOr parses s, substituting fallback when s is missing or
// malformed. Used by the classifier and resolver defaulting rules.
func ParseClockOr(s string, fallback Clock) Clock {
	c, err := ParseClock(s)
	if err != nil {
		return fallback
	}
	return c
}

// Hour returns the hour component, defaulting malformed input to 0 so a
// record with a broken start time still lands in the earliest band.
func Hour(s string) int {
	h, _, ok := splitClock(s)
	if !ok {
		return 0
	}
	return h
}

func splitClock(s string) (h, m int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// Add returns the clock shifted forward by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// String renders the clock back to "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
