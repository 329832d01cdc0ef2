package schedule

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

func TestClassifyBand(t *testing.T) {
	t.Parallel()

	t.Run("derives band from start hour", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			start string
			want  domain.TimeBand
		}{
			{"00:00", domain.BandMorning},
			{"11:59", domain.BandMorning},
			{"12:00", domain.BandAfternoon},
			{"13:05", domain.BandAfternoon},
			{"17:59", domain.BandAfternoon},
			{"18:00", domain.BandEvening},
			{"23:30", domain.BandEvening},
		}
		for _, tc := range cases {
			e := domain.PerformanceEvent{StartTime: tc.start}
			if got := ClassifyBand(e); got != tc.want {
				t.Fatalf("ClassifyBand(start=%s) = %s, want %s", tc.start, got, tc.want)
			}
		}
	})

	t.Run("authoritative label wins over start time", func(t *testing.T) {
		t.Parallel()

		// A morning performance delayed to 13:00 keeps its label.
		e := domain.PerformanceEvent{TimeBand: domain.BandMorning, StartTime: "13:00"}
		if got := ClassifyBand(e); got != domain.BandMorning {
			t.Fatalf("expected label to win, got %s", got)
		}
	})

	t.Run("missing start time fails open to morning", func(t *testing.T) {
		t.Parallel()

		for _, start := range []string{"", "garbage", "25:00", "12"} {
			e := domain.PerformanceEvent{StartTime: start}
			if got := ClassifyBand(e); got != domain.BandMorning {
				t.Fatalf("ClassifyBand(start=%q) = %s, want morning", start, got)
			}
		}
	})
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	t.Run("round trips HH:MM", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"00:00", "09:05", "14:30", "23:59"} {
			c, err := ParseClock(s)
			if err != nil {
				t.Fatalf("ParseClock(%q) returned error: %v", s, err)
			}
			if c.String() != s {
				t.Fatalf("round trip %q -> %q", s, c.String())
			}
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"", "14", "24:00", "12:60", "ab:cd"} {
			if _, err := ParseClock(s); err == nil {
				t.Fatalf("ParseClock(%q) accepted malformed input", s)
			}
		}
	})

	t.Run("add crosses the hour", func(t *testing.T) {
		t.Parallel()

		c, _ := ParseClock("14:00")
		if got := c.Add(90).String(); got != "15:30" {
			t.Fatalf("14:00 + 90min = %s, want 15:30", got)
		}
	})
}
