package schedule

import "testing"

func TestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("stale fetch cannot overwrite a newer commit", func(t *testing.T) {
		t.Parallel()

		var s Snapshot[string]
		slow := s.Begin()
		fast := s.Begin()

		if !s.Commit(fast, "fresh") {
			t.Fatalf("newest fetch failed to commit")
		}
		// The slow fetch completes after the newer one already landed.
		if s.Commit(slow, "stale") {
			t.Fatalf("stale fetch overwrote the newer snapshot")
		}

		v, ok := s.Get()
		if !ok || v != "fresh" {
			t.Fatalf("snapshot = %q/%v, want fresh", v, ok)
		}
	})

	t.Run("older completion applies while newer is still in flight", func(t *testing.T) {
		t.Parallel()

		var s Snapshot[int]
		first := s.Begin()
		second := s.Begin()

		if !s.Commit(first, 1) {
			t.Fatalf("first completion should apply before the second lands")
		}
		if !s.Commit(second, 2) {
			t.Fatalf("second completion should supersede")
		}
		if v, _ := s.Get(); v != 2 {
			t.Fatalf("snapshot = %d, want 2", v)
		}
	})

	t.Run("empty snapshot reports no value", func(t *testing.T) {
		t.Parallel()

		var s Snapshot[int]
		if _, ok := s.Get(); ok {
			t.Fatalf("empty snapshot reported a value")
		}
	})

	t.Run("invalidate drops the value but keeps ordering", func(t *testing.T) {
		t.Parallel()

		var s Snapshot[int]
		gen := s.Begin()
		s.Commit(gen, 7)
		s.Invalidate()

		if _, ok := s.Get(); ok {
			t.Fatalf("invalidated snapshot still has a value")
		}
		if s.Commit(gen, 7) {
			t.Fatalf("superseded generation recommitted after invalidate")
		}
	})
}
