package schedule

import (
	"sort"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

// SlotEntry is one row of a merged (date, venue, band) display list.
type SlotEntry struct {
	Event domain.PerformanceEvent `json:"event"`
	// Blocking entries render as occupied, non-interactive slots
	// (confirmed private bookings, GM tests, test plays).
	Blocking bool `json:"blocking"`
	// Availability is computed for open entries only.
	Availability domain.Availability `json:"availability"`
}

// MergeSlot merges openly bookable events with the blocking events that
// occupy the same slot into a single display list ordered by start time.
//
// The sort must be stable: two concurrently created events can share a
// start time and their relative order is meaningless, but it has to stay
// the same across renders.
func MergeSlot(open, blocking []domain.PerformanceEvent) []SlotEntry {
	entries := make([]SlotEntry, 0, len(open)+len(blocking))
	for _, e := range open {
		entries = append(entries, SlotEntry{
			Event:        e,
			Availability: EventAvailability(e),
		})
	}
	for _, e := range blocking {
		entries = append(entries, SlotEntry{Event: e, Blocking: true})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return ParseClockOr(entries[a].Event.StartTime, 0) <
			ParseClockOr(entries[b].Event.StartTime, 0)
	})

	return entries
}

// SplitByKind partitions a slot's events into open and blocking lists,
// dropping cancelled and neutral (rental/meeting/memo) events. Kind is
// precomputed at ingestion; KindOf is consulted as a fallback for
// records that never went through normalization.
func SplitByKind(events []domain.PerformanceEvent) (open, blocking []domain.PerformanceEvent) {
	for _, e := range events {
		if e.IsCancelled {
			continue
		}
		kind := e.Kind
		if kind == "" {
			kind = domain.KindOf(e.Category, e.IsPrivateBooking)
		}
		switch kind {
		case domain.KindOpen:
			open = append(open, e)
		case domain.KindBlocking:
			blocking = append(blocking, e)
		}
	}
	return open, blocking
}

// DaysUntil counts calendar days from today to the target date.
//
// Both sides are truncated to local midnight before subtracting so that
// daylight-savings shifts or sub-day clock skew cannot move the count by
// one. A target earlier than today yields a negative count.
func DaysUntil(today, target time.Time) int {
	t0 := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	t1 := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, target.Location())
	d := t1.Sub(t0)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// CanRequestPrivateBooking reports whether an empty slot should offer the
// "request a private booking" affordance: no open or blocking event in
// the slot, and the booking deadline not yet passed. The deadline is
// inclusive: daysUntil == deadlineDays is still applyable.
func CanRequestPrivateBooking(entries []SlotEntry, today, target time.Time, deadlineDays int) bool {
	if len(entries) > 0 {
		return false
	}
	return DaysUntil(today, target) >= deadlineDays
}
