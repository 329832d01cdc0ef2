package schedule

import "github.com/ayase-lab/mmadmin/internal/domain"

// nearlyFullThreshold returns the remaining-seats count at or below which
// an event is reported nearly full. A literal 20% of a small capacity
// rounds down to 0 (max 4 -> 0), which would make the warning state
// unreachable, so the threshold is floored at one seat.
func nearlyFullThreshold(maxParticipants int) int {
	t := maxParticipants * 20 / 100
	if t < 1 {
		t = 1
	}
	return t
}

// Availability derives the remaining capacity and its coarse status.
// The current count is whatever the backend reported; a count above the
// maximum clamps remaining to zero rather than going negative.
func Availability(maxParticipants, currentParticipants int) domain.Availability {
	remaining := maxParticipants - currentParticipants
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case remaining == 0:
		return domain.Availability{Status: domain.StatusFull, Remaining: 0}
	case remaining <= nearlyFullThreshold(maxParticipants):
		return domain.Availability{Status: domain.StatusNearlyFull, Remaining: remaining}
	default:
		return domain.Availability{Status: domain.StatusAvailable, Remaining: remaining}
	}
}

// EventAvailability applies Availability to an event. A private booking
// is never publicly bookable, so it reports full regardless of counts.
func EventAvailability(e domain.PerformanceEvent) domain.Availability {
	if e.IsPrivateBooking || e.Category == domain.CategoryPrivate {
		return domain.Availability{Status: domain.StatusFull, Remaining: 0}
	}
	return Availability(e.MaxParticipants, e.CurrentParticipants)
}
