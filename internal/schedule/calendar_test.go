package schedule

import (
	"testing"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

func TestMonthDays(t *testing.T) {
	t.Parallel()

	t.Run("covers the whole month", func(t *testing.T) {
		t.Parallel()

		days := MonthDays(2024, time.February) // leap year
		if len(days) != 29 {
			t.Fatalf("February 2024 has %d days, want 29", len(days))
		}
		if days[0].Date != "2024-02-01" || days[28].Date != "2024-02-29" {
			t.Fatalf("unexpected bounds: %s .. %s", days[0].Date, days[28].Date)
		}
		if days[0].DisplayDate != "2/1" {
			t.Fatalf("display date = %s, want 2/1", days[0].DisplayDate)
		}
	})
}

func TestBuildMonthGrid(t *testing.T) {
	t.Parallel()

	permanent := domain.Venue{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:      "Main Hall",
		ShortName: "Main",
	}
	temporary := domain.Venue{
		ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:        "Popup Stage",
		ShortName:   "Popup",
		IsTemporary: true,
	}
	venues := []domain.Venue{permanent, temporary}
	resolver := NewVenueResolver(venues)

	events := []domain.PerformanceEvent{
		{
			ID: uuid.New(), Date: "2024-05-10", VenueRef: "Popup",
			Category: domain.CategoryOpen, Kind: domain.KindOpen,
			StartTime: "19:00", EndTime: "23:00", MaxParticipants: 8,
		},
	}
	grid := BuildMonthGrid(2024, time.May, BuildIndex(events, resolver), venues)

	t.Run("temporary venue shows only on its open dates", func(t *testing.T) {
		t.Parallel()

		for _, dg := range grid {
			var hasPopup bool
			for _, col := range dg.Venues {
				if col.Venue.ID == temporary.ID {
					hasPopup = true
				}
			}
			if dg.Day.Date == "2024-05-10" && !hasPopup {
				t.Fatalf("temporary venue missing on its open date")
			}
			if dg.Day.Date != "2024-05-10" && hasPopup {
				t.Fatalf("temporary venue shown as empty column on %s", dg.Day.Date)
			}
		}
	})

	t.Run("permanent venue always has a column", func(t *testing.T) {
		t.Parallel()

		for _, dg := range grid {
			var hasMain bool
			for _, col := range dg.Venues {
				if col.Venue.ID == permanent.ID {
					hasMain = true
				}
			}
			if !hasMain {
				t.Fatalf("permanent venue missing on %s", dg.Day.Date)
			}
		}
	})
}

func TestAnnotateRequestable(t *testing.T) {
	t.Parallel()

	venue := domain.Venue{
		ID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name: "Main Hall",
	}
	venues := []domain.Venue{venue}
	resolver := NewVenueResolver(venues)

	events := []domain.PerformanceEvent{
		{
			ID: uuid.New(), Date: "2024-05-20", VenueRef: "Main Hall",
			Category: domain.CategoryOpen, Kind: domain.KindOpen,
			StartTime: "19:00", EndTime: "23:00", MaxParticipants: 8,
		},
	}
	grid := BuildMonthGrid(2024, time.May, BuildIndex(events, resolver), venues)

	today := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)
	AnnotateRequestable(grid, today, 7)

	for _, dg := range grid {
		col := dg.Venues[0]
		switch dg.Day.Date {
		case "2024-05-20":
			if col.Requestable[domain.BandEvening] {
				t.Fatalf("occupied evening slot marked requestable on %s", dg.Day.Date)
			}
			if !col.Requestable[domain.BandMorning] {
				t.Fatalf("empty morning slot not requestable on %s", dg.Day.Date)
			}
		case "2024-05-07":
			if col.Requestable[domain.BandMorning] {
				t.Fatalf("slot inside the deadline marked requestable")
			}
		case "2024-05-08":
			if !col.Requestable[domain.BandMorning] {
				t.Fatalf("slot exactly at the deadline must be requestable")
			}
		}
	}
}

func TestCountCategories(t *testing.T) {
	t.Parallel()

	gm := []domain.GMAssignment{{StaffName: "Alice", Role: domain.RoleMain}}
	events := []domain.PerformanceEvent{
		{Category: domain.CategoryOpen, ScenarioTitle: "The Locked Room", GMRoster: gm},
		{Category: domain.CategoryOpen, ScenarioTitle: ""}, // alert: no scenario
		{Category: domain.CategoryPrivate, ScenarioTitle: "Midnight Train", GMRoster: []domain.GMAssignment{{StaffName: ""}}}, // alert: empty GM
		{Category: domain.CategoryGMTest, ScenarioTitle: "Rehearsal", GMRoster: gm, IsCancelled: true},
	}

	counts := CountCategories(events)
	if counts.All != 4 {
		t.Fatalf("All = %d, want 4", counts.All)
	}
	if counts.ByCategory[domain.CategoryOpen] != 2 {
		t.Fatalf("open = %d, want 2", counts.ByCategory[domain.CategoryOpen])
	}
	if counts.Cancelled != 1 {
		t.Fatalf("cancelled = %d, want 1", counts.Cancelled)
	}
	if counts.Alerts != 2 {
		t.Fatalf("alerts = %d, want 2", counts.Alerts)
	}
}
