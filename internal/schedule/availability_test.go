package schedule

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
)

func TestAvailability(t *testing.T) {
	t.Parallel()

	t.Run("remaining never goes negative", func(t *testing.T) {
		t.Parallel()

		for c := 0; c <= 12; c++ {
			got := Availability(8, c)
			want := 8 - c
			if want < 0 {
				want = 0
			}
			if got.Remaining != want {
				t.Fatalf("Availability(8, %d).Remaining = %d, want %d", c, got.Remaining, want)
			}
		}
	})

	t.Run("status is monotonically non-increasing in openness", func(t *testing.T) {
		t.Parallel()

		rank := map[domain.AvailabilityStatus]int{
			domain.StatusAvailable:  2,
			domain.StatusNearlyFull: 1,
			domain.StatusFull:       0,
		}
		for _, maxP := range []int{1, 2, 4, 6, 8, 20} {
			prev := rank[domain.StatusAvailable]
			for c := 0; c <= maxP+2; c++ {
				got := rank[Availability(maxP, c).Status]
				if got > prev {
					t.Fatalf("max=%d: status rank rose from %d to %d at count %d", maxP, prev, got, c)
				}
				prev = got
			}
		}
	})

	t.Run("nearly-full threshold is floored at one seat", func(t *testing.T) {
		t.Parallel()

		for _, maxP := range []int{1, 2, 3, 4, 5} {
			threshold := maxP * 20 / 100
			if threshold < 1 {
				threshold = 1
			}

			// Smallest remaining that is still available must exceed the floor.
			for c := 0; c <= maxP; c++ {
				a := Availability(maxP, c)
				if a.Status == domain.StatusAvailable && a.Remaining <= threshold {
					t.Fatalf("max=%d remaining=%d reported available within threshold %d",
						maxP, a.Remaining, threshold)
				}
			}

			// max=4 is the canonical small-capacity case: floor(4*0.2)=0,
			// floored up so one seat left still warns.
			if maxP == 4 {
				if got := Availability(4, 3).Status; got != domain.StatusNearlyFull {
					t.Fatalf("Availability(4, 3).Status = %s, want nearly_full", got)
				}
			}
		}
	})

	t.Run("zero remaining is full", func(t *testing.T) {
		t.Parallel()

		if got := Availability(6, 6).Status; got != domain.StatusFull {
			t.Fatalf("Availability(6, 6).Status = %s, want full", got)
		}
		if got := Availability(6, 9).Status; got != domain.StatusFull {
			t.Fatalf("Availability(6, 9).Status = %s, want full", got)
		}
	})
}

func TestEventAvailability(t *testing.T) {
	t.Parallel()

	t.Run("private booking is always full", func(t *testing.T) {
		t.Parallel()

		e := domain.PerformanceEvent{
			IsPrivateBooking:    true,
			MaxParticipants:     10,
			CurrentParticipants: 0,
		}
		if got := EventAvailability(e); got.Status != domain.StatusFull || got.Remaining != 0 {
			t.Fatalf("private booking availability = %+v, want full/0", got)
		}

		e = domain.PerformanceEvent{
			Category:            domain.CategoryPrivate,
			MaxParticipants:     10,
			CurrentParticipants: 2,
		}
		if got := EventAvailability(e); got.Status != domain.StatusFull {
			t.Fatalf("private category availability = %+v, want full", got)
		}
	})

	t.Run("open event uses the counts", func(t *testing.T) {
		t.Parallel()

		e := domain.PerformanceEvent{
			Category:            domain.CategoryOpen,
			MaxParticipants:     8,
			CurrentParticipants: 2,
		}
		got := EventAvailability(e)
		if got.Status != domain.StatusAvailable || got.Remaining != 6 {
			t.Fatalf("open availability = %+v, want available/6", got)
		}
	})
}
