package schedule

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return c
}

func eventAt(start, end string) domain.PerformanceEvent {
	return domain.PerformanceEvent{
		ID:        uuid.New(),
		Date:      "2024-05-10",
		StartTime: start,
		EndTime:   end,
	}
}

func TestResolveStart(t *testing.T) {
	t.Parallel()

	t.Run("preparation buffer pushes the start forward", func(t *testing.T) {
		t.Parallel()

		// Prior performance ends 14:00, scenario needs 60+30 minutes of
		// prep, so a 14:15 candidate moves to 15:30 and runs 120 minutes.
		scenario := &domain.Scenario{DurationMinutes: 120, ExtraPrepMinutes: 30}
		events := []domain.PerformanceEvent{eventAt("10:00", "14:00")}

		start, end := ResolveStart(mustClock(t, "14:15"), scenario, events, uuid.Nil)
		if start.String() != "15:30" {
			t.Fatalf("adjustedStart = %s, want 15:30", start)
		}
		if end.String() != "17:30" {
			t.Fatalf("adjustedEnd = %s, want 17:30", end)
		}
	})

	t.Run("no conflict leaves the candidate unchanged", func(t *testing.T) {
		t.Parallel()

		scenario := &domain.Scenario{DurationMinutes: 120}
		events := []domain.PerformanceEvent{eventAt("08:00", "10:00")}

		start, end := ResolveStart(mustClock(t, "15:00"), scenario, events, uuid.Nil)
		if start.String() != "15:00" {
			t.Fatalf("adjustedStart = %s, want 15:00", start)
		}
		if end.String() != "17:00" {
			t.Fatalf("adjustedEnd = %s, want 17:00", end)
		}
	})

	t.Run("no preceding event leaves the candidate unchanged", func(t *testing.T) {
		t.Parallel()

		scenario := &domain.Scenario{DurationMinutes: 180}
		start, end := ResolveStart(mustClock(t, "10:00"), scenario, nil, uuid.Nil)
		if start.String() != "10:00" || end.String() != "13:00" {
			t.Fatalf("got %s-%s, want 10:00-13:00", start, end)
		}
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		t.Parallel()

		scenario := &domain.Scenario{DurationMinutes: 120, ExtraPrepMinutes: 15}
		events := []domain.PerformanceEvent{
			eventAt("10:00", "13:30"),
			eventAt("18:00", "22:00"),
		}

		first, firstEnd := ResolveStart(mustClock(t, "13:45"), scenario, events, uuid.Nil)
		second, secondEnd := ResolveStart(first, scenario, events, uuid.Nil)
		if first != second || firstEnd != secondEnd {
			t.Fatalf("resolver drifted: %s-%s then %s-%s", first, firstEnd, second, secondEnd)
		}
	})

	t.Run("never returns a start earlier than the candidate", func(t *testing.T) {
		t.Parallel()

		scenario := &domain.Scenario{DurationMinutes: 120}
		events := []domain.PerformanceEvent{eventAt("08:00", "09:00")}

		for _, candidate := range []string{"09:00", "10:00", "12:30", "20:00"} {
			c := mustClock(t, candidate)
			start, _ := ResolveStart(c, scenario, events, uuid.Nil)
			if start < c {
				t.Fatalf("candidate %s regressed to %s", c, start)
			}
		}
	})

	t.Run("cancelled events do not constrain the start", func(t *testing.T) {
		t.Parallel()

		cancelled := eventAt("10:00", "14:00")
		cancelled.IsCancelled = true

		start, _ := ResolveStart(mustClock(t, "14:15"), &domain.Scenario{DurationMinutes: 120},
			[]domain.PerformanceEvent{cancelled}, uuid.Nil)
		if start.String() != "14:15" {
			t.Fatalf("cancelled event moved the start to %s", start)
		}
	})

	t.Run("the event being edited is excluded", func(t *testing.T) {
		t.Parallel()

		self := eventAt("10:00", "14:00")
		start, _ := ResolveStart(mustClock(t, "14:15"), &domain.Scenario{DurationMinutes: 120},
			[]domain.PerformanceEvent{self}, self.ID)
		if start.String() != "14:15" {
			t.Fatalf("event conflicted with itself, start = %s", start)
		}
	})

	t.Run("latest preceding end wins among several", func(t *testing.T) {
		t.Parallel()

		events := []domain.PerformanceEvent{
			eventAt("09:00", "11:00"),
			eventAt("11:30", "13:00"),
			eventAt("19:00", "22:00"), // after the candidate, ignored
		}
		start, _ := ResolveStart(mustClock(t, "13:30"), &domain.Scenario{DurationMinutes: 120}, events, uuid.Nil)
		if start.String() != "14:00" { // 13:00 + 60min base prep
			t.Fatalf("adjustedStart = %s, want 14:00", start)
		}
	})

	t.Run("missing duration falls back to the domain default", func(t *testing.T) {
		t.Parallel()

		start, end := ResolveStart(mustClock(t, "10:00"), &domain.Scenario{}, nil, uuid.Nil)
		if int(end-start) != DefaultDurationMinutes {
			t.Fatalf("duration = %d minutes, want %d", int(end-start), DefaultDurationMinutes)
		}

		start, end = ResolveStart(mustClock(t, "10:00"), nil, nil, uuid.Nil)
		if int(end-start) != DefaultDurationMinutes {
			t.Fatalf("nil scenario duration = %d minutes, want %d", int(end-start), DefaultDurationMinutes)
		}
	})
}

func TestCheckOverlap(t *testing.T) {
	t.Parallel()

	prepFor := func(e domain.PerformanceEvent) int { return BasePrepMinutes }

	t.Run("detects a candidate inside an existing performance", func(t *testing.T) {
		t.Parallel()

		existing := []domain.PerformanceEvent{eventAt("14:00", "18:00")}
		candidate := eventAt("15:00", "17:00")

		if ov := CheckOverlap(candidate, BasePrepMinutes, existing, prepFor); ov == nil {
			t.Fatalf("expected overlap, got none")
		}
	})

	t.Run("respects the preparation gap after the existing event", func(t *testing.T) {
		t.Parallel()

		existing := []domain.PerformanceEvent{eventAt("10:00", "14:00")}

		// 14:30 start leaves only 30 minutes of the required 60.
		tooSoon := eventAt("14:30", "18:30")
		if ov := CheckOverlap(tooSoon, BasePrepMinutes, existing, prepFor); ov == nil {
			t.Fatalf("expected prep-gap conflict, got none")
		}

		lateEnough := eventAt("15:00", "19:00")
		if ov := CheckOverlap(lateEnough, BasePrepMinutes, existing, prepFor); ov != nil {
			t.Fatalf("unexpected conflict: %s", ov.Reason)
		}
	})

	t.Run("ignores cancelled events and other dates", func(t *testing.T) {
		t.Parallel()

		cancelled := eventAt("14:00", "18:00")
		cancelled.IsCancelled = true
		otherDay := eventAt("14:00", "18:00")
		otherDay.Date = "2024-05-11"

		candidate := eventAt("15:00", "17:00")
		if ov := CheckOverlap(candidate, 0, []domain.PerformanceEvent{cancelled, otherDay}, prepFor); ov != nil {
			t.Fatalf("unexpected conflict: %s", ov.Reason)
		}
	})
}
