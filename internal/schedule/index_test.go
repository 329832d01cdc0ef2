package schedule

import (
	"testing"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
)

func testVenues() []domain.Venue {
	return []domain.Venue{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:      "Takadanobaba Main Hall",
			ShortName: "Baba",
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:      "Otsuka Annex",
			ShortName: "Otsuka",
		},
	}
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	venues := testVenues()
	resolver := NewVenueResolver(venues)

	events := []domain.PerformanceEvent{
		{
			ID:        uuid.New(),
			Date:      "2024-05-10",
			VenueRef:  venues[0].ID.String(), // referenced by id
			StartTime: "10:00",
			EndTime:   "14:00",
		},
		{
			ID:        uuid.New(),
			Date:      "2024-05-10",
			VenueRef:  "Baba", // referenced by short name
			StartTime: "19:00",
			EndTime:   "23:00",
		},
		{
			ID:        uuid.New(),
			Date:      "2024-05-10",
			VenueRef:  "Otsuka Annex", // referenced by full name
			StartTime: "14:30",
			EndTime:   "18:30",
		},
		{
			ID:        uuid.New(),
			Date:      "2024-05-11",
			VenueRef:  "Demolished Venue", // unresolvable
			StartTime: "10:00",
			EndTime:   "14:00",
		},
	}
	idx := BuildIndex(events, resolver)

	t.Run("every venue key form finds the event", func(t *testing.T) {
		t.Parallel()

		for _, e := range events[:2] {
			for _, key := range []string{venues[0].ID.String(), "Baba", "Takadanobaba Main Hall"} {
				got := idx.ByDateVenueBand(e.Date, key, ClassifyBand(e))
				if !containsEvent(got, e.ID) {
					t.Fatalf("event %s missing from ByDateVenueBand(%s, %q, %s)",
						e.ID, e.Date, key, ClassifyBand(e))
				}
			}
		}
	})

	t.Run("date lookup keeps all events including unresolvable venues", func(t *testing.T) {
		t.Parallel()

		if got := len(idx.ByDate("2024-05-10")); got != 3 {
			t.Fatalf("ByDate(2024-05-10) = %d events, want 3", got)
		}
		if got := len(idx.ByDate("2024-05-11")); got != 1 {
			t.Fatalf("ByDate(2024-05-11) = %d events, want 1", got)
		}
	})

	t.Run("unresolvable venue is absent from venue-scoped lookups", func(t *testing.T) {
		t.Parallel()

		if got := idx.ByDateVenue("2024-05-11", "Demolished Venue"); got != nil {
			t.Fatalf("expected no venue-scoped hits, got %d", len(got))
		}
	})

	t.Run("venue lookups separate venues sharing a date", func(t *testing.T) {
		t.Parallel()

		if got := len(idx.ByDateVenue("2024-05-10", "Otsuka")); got != 1 {
			t.Fatalf("ByDateVenue(Otsuka) = %d, want 1", got)
		}
		if got := len(idx.ByDateVenue("2024-05-10", "Baba")); got != 2 {
			t.Fatalf("ByDateVenue(Baba) = %d, want 2", got)
		}
	})
}

func TestVenueResolver(t *testing.T) {
	t.Parallel()

	resolver := NewVenueResolver(testVenues())

	t.Run("resolution ignores case and surrounding space", func(t *testing.T) {
		t.Parallel()

		id, ok := resolver.Resolve("  baba ")
		if !ok {
			t.Fatalf("expected resolution for padded short name")
		}
		if id != uuid.MustParse("11111111-1111-1111-1111-111111111111") {
			t.Fatalf("resolved wrong venue: %s", id)
		}
	})

	t.Run("keys for a venue cover all three forms", func(t *testing.T) {
		t.Parallel()

		keys := resolver.KeysFor(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
		if len(keys) != 3 {
			t.Fatalf("KeysFor = %v, want 3 keys", keys)
		}
	})

	t.Run("canonical ref is the same for every reference form", func(t *testing.T) {
		t.Parallel()

		id := uuid.MustParse("11111111-1111-1111-1111-111111111111")

		// A row stored under the short name must stay visible to a write
		// arriving with the id or the full name: every form has to yield
		// the identical canonical id and the identical query-key set.
		for _, ref := range []string{id.String(), "Baba", "Takadanobaba Main Hall"} {
			canonical, keys := resolver.CanonicalRef(ref)
			if canonical != id.String() {
				t.Fatalf("CanonicalRef(%q) = %q, want %q", ref, canonical, id.String())
			}
			if len(keys) != 3 {
				t.Fatalf("CanonicalRef(%q) keys = %v, want 3", ref, keys)
			}
			var hasShort bool
			for _, k := range keys {
				if k == "baba" {
					hasShort = true
				}
			}
			if !hasShort {
				t.Fatalf("CanonicalRef(%q) keys %v missing normalized short name", ref, keys)
			}
		}
	})

	t.Run("unresolvable ref maps to its normalized self", func(t *testing.T) {
		t.Parallel()

		canonical, keys := resolver.CanonicalRef("  Demolished Venue ")
		if canonical != "  Demolished Venue " {
			t.Fatalf("canonical = %q, want the original reference", canonical)
		}
		if len(keys) != 1 || keys[0] != "demolished venue" {
			t.Fatalf("keys = %v, want the single normalized reference", keys)
		}
	})
}

func containsEvent(events []domain.PerformanceEvent, id uuid.UUID) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}
