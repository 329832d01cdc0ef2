package schedule

import (
	"fmt"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

// Day is one calendar day of the month view.
type Day struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Day         int    `json:"day"`
	Weekday     string `json:"weekday"`
	DisplayDate string `json:"display_date"` // M/D
}

// MonthDays lists every day of the given month.
func MonthDays(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local)
		days = append(days, Day{
			Date:        date.Format("2006-01-02"),
			Day:         d,
			Weekday:     date.Weekday().String()[:3],
			DisplayDate: fmt.Sprintf("%d/%d", int(month), d),
		})
	}
	return days
}

// VenueColumn is one venue x band cell group within a calendar day.
type VenueColumn struct {
	Venue domain.Venue                    `json:"venue"`
	Bands map[domain.TimeBand][]SlotEntry `json:"bands"`
	// Requestable marks the empty bands still ahead of the
	// private-booking deadline; see AnnotateRequestable.
	Requestable map[domain.TimeBand]bool `json:"requestable,omitempty"`
}

// DayGrid is the merged display state of one calendar day.
type DayGrid struct {
	Day    Day           `json:"day"`
	Venues []VenueColumn `json:"venues"`
}

// Bands in display order.
var Bands = []domain.TimeBand{domain.BandMorning, domain.BandAfternoon, domain.BandEvening}

// BuildMonthGrid derives the full date x venue x band grid from the
// index. Permanent venues always get a column; a temporary venue appears
// only on dates where it actually hosts an open event, never as an empty
// bookable column.
func BuildMonthGrid(year int, month time.Month, idx *Index, venues []domain.Venue) []DayGrid {
	days := MonthDays(year, month)
	grid := make([]DayGrid, 0, len(days))

	for _, day := range days {
		dg := DayGrid{Day: day}
		for _, v := range venues {
			col := VenueColumn{
				Venue: v,
				Bands: make(map[domain.TimeBand][]SlotEntry, len(Bands)),
			}
			hasOpen := false
			for _, band := range Bands {
				open, blocking := SplitByKind(idx.ByDateVenueBand(day.Date, v.ID.String(), band))
				if len(open) > 0 {
					hasOpen = true
				}
				col.Bands[band] = MergeSlot(open, blocking)
			}
			if v.IsTemporary && !hasOpen {
				continue
			}
			dg.Venues = append(dg.Venues, col)
		}
		grid = append(grid, dg)
	}
	return grid
}

// AnnotateRequestable fills each column's Requestable flags: an empty
// (date, venue, band) slot offers the private-booking request affordance
// only while the deadline has not passed. Temporary venues are excluded;
// they exist only for the events already on them.
func AnnotateRequestable(grid []DayGrid, today time.Time, deadlineDays int) {
	for gi := range grid {
		target, err := time.ParseInLocation("2006-01-02", grid[gi].Day.Date, time.Local)
		if err != nil {
			continue
		}
		for vi := range grid[gi].Venues {
			col := &grid[gi].Venues[vi]
			if col.Venue.IsTemporary {
				continue
			}
			col.Requestable = make(map[domain.TimeBand]bool, len(Bands))
			for _, band := range Bands {
				col.Requestable[band] = CanRequestPrivateBooking(col.Bands[band], today, target, deadlineDays)
			}
		}
	}
}

// CategoryCounts tallies a month's events for the dashboard header.
type CategoryCounts struct {
	All        int                       `json:"all"`
	ByCategory map[domain.EventCategory]int `json:"by_category"`
	Cancelled  int                       `json:"cancelled"`
	// Alerts counts non-cancelled events missing a scenario or any GM,
	// the ones an admin has to finish staffing.
	Alerts int `json:"alerts"`
}

// CountCategories computes category tallies over a raw event list.
func CountCategories(events []domain.PerformanceEvent) CategoryCounts {
	counts := CategoryCounts{
		All:        len(events),
		ByCategory: make(map[domain.EventCategory]int),
	}
	for _, e := range events {
		if e.IsCancelled {
			counts.Cancelled++
		}
		counts.ByCategory[e.Category]++

		if e.IsCancelled {
			continue
		}
		if e.ScenarioTitle == "" || !hasAnyGM(e.GMRoster) {
			counts.Alerts++
		}
	}
	return counts
}

func hasAnyGM(roster []domain.GMAssignment) bool {
	for _, a := range roster {
		if a.StaffName != "" {
			return true
		}
	}
	return false
}
