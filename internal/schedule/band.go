package schedule

import "github.com/ayase-lab/mmadmin/internal/domain"

// ClassifyBand maps an event to its time band.
//
// An explicit stored label wins over the start time: an event manually
// recategorized (say a morning slot delayed past noon) must keep its
// label instead of silently drifting into another band. Only when no
// label is present does the hour of the start time decide; a missing or
// unparseable start time is treated as hour 0 so the event stays
// visible in the morning band rather than vanishing from all three.
func ClassifyBand(e domain.PerformanceEvent) domain.TimeBand {
	switch e.TimeBand {
	case domain.BandMorning, domain.BandAfternoon, domain.BandEvening:
		return e.TimeBand
	}
	return BandForStart(e.StartTime)
}

// BandForStart derives a band from an "HH:MM" start time alone.
func BandForStart(startTime string) domain.TimeBand {
	hour := Hour(startTime)
	switch {
	case hour < 12:
		return domain.BandMorning
	case hour <= 17:
		return domain.BandAfternoon
	default:
		return domain.BandEvening
	}
}
