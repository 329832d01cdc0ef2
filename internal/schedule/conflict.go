package schedule

import (
	"fmt"
	"sort"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

const (
	// BasePrepMinutes is the minimum turnaround between two performances
	// at one venue: reset, cleaning and GM briefing. Scenarios add their
	// own ExtraPrepMinutes on top.
	BasePrepMinutes = 60

	// DefaultDurationMinutes substitutes for a scenario with no recorded
	// duration so a resolved event never ends at or before its start.
	DefaultDurationMinutes = 240
)

// PrepMinutes is the full preparation buffer required before the given
// scenario can start. A nil scenario gets the base buffer.
func PrepMinutes(s *domain.Scenario) int {
	if s == nil {
		return BasePrepMinutes
	}
	return BasePrepMinutes + s.ExtraPrepMinutes
}

func durationMinutes(s *domain.Scenario) int {
	if s == nil || s.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return s.DurationMinutes
}

// ResolveStart computes the earliest allowed start for a scenario at a
// candidate time, given the other events that day at the same venue.
//
// The latest non-cancelled event ending at or before the candidate is
// "the immediately preceding performance"; if its end plus the
// scenario's preparation buffer lands after the candidate, the start is
// pushed forward to that point. A start the user chose that is already
// late enough is never shortened, and feeding the adjusted start back in
// returns it unchanged (no forward drift).
//
// excludeID skips the event being edited so it cannot conflict with
// itself; pass uuid.Nil when creating.
func ResolveStart(
	candidateStart Clock,
	scenario *domain.Scenario,
	sameDayVenueEvents []domain.PerformanceEvent,
	excludeID uuid.UUID,
) (adjustedStart, adjustedEnd Clock) {
	adjustedStart = candidateStart

	if prev, ok := precedingEvent(candidateStart, sameDayVenueEvents, excludeID); ok {
		required := prev.Add(PrepMinutes(scenario))
		if required > adjustedStart {
			adjustedStart = required
		}
	}

	return adjustedStart, adjustedStart.Add(durationMinutes(scenario))
}

// precedingEvent returns the end time of the latest event that finishes
// at or before the candidate start. Two events legitimately never end at
// the same minute at one venue, but duplicate data does occur; the
// end-descending stable sort with last-of-maximal-set selection keeps
// the pick deterministic either way.
func precedingEvent(candidateStart Clock, events []domain.PerformanceEvent, excludeID uuid.UUID) (Clock, bool) {
	var ends []Clock
	for _, e := range events {
		if e.IsCancelled {
			continue
		}
		if excludeID != uuid.Nil && e.ID == excludeID {
			continue
		}
		end, err := ParseClock(e.EndTime)
		if err != nil {
			continue
		}
		if end <= candidateStart {
			ends = append(ends, end)
		}
	}
	if len(ends) == 0 {
		return 0, false
	}

	sort.SliceStable(ends, func(a, b int) bool { return ends[a] > ends[b] })

	last := 0
	for last+1 < len(ends) && ends[last+1] == ends[0] {
		last++
	}
	return ends[last], true
}

// Overlap describes a hard scheduling conflict between a candidate
// performance and an existing one.
type Overlap struct {
	Event  domain.PerformanceEvent
	Reason string
}

// CheckOverlap validates a candidate interval against every same-day
// same-venue event, widening both sides by their preparation buffers.
// Unlike ResolveStart, which only nudges a start forward past the
// preceding event, this catches a candidate dropped into the middle of
// an existing performance. The first conflicting event is returned.
func CheckOverlap(
	candidate domain.PerformanceEvent,
	candidatePrep int,
	existing []domain.PerformanceEvent,
	prepFor func(e domain.PerformanceEvent) int,
) *Overlap {
	newStart, err := ParseClock(candidate.StartTime)
	if err != nil {
		return nil
	}
	newEnd := ParseClockOr(candidate.EndTime, newStart.Add(DefaultDurationMinutes))

	for _, e := range existing {
		if e.IsCancelled || e.ID == candidate.ID {
			continue
		}
		if e.Date != candidate.Date {
			continue
		}
		start, err := ParseClock(e.StartTime)
		if err != nil {
			continue
		}
		end := ParseClockOr(e.EndTime, start.Add(DefaultDurationMinutes))

		existingPrep := 0
		if prepFor != nil {
			existingPrep = prepFor(e)
		}

		// The buffer belongs to whichever performance starts second.
		if newStart < end.Add(candidatePrep) && start.Add(-existingPrep) < newEnd {
			return &Overlap{
				Event: e,
				Reason: fmt.Sprintf("overlaps %s-%s performance (prep %dmin)",
					start, end, max(candidatePrep, existingPrep)),
			}
		}
	}
	return nil
}
