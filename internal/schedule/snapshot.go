package schedule

import "sync"

// Snapshot holds the last-known-good result of an asynchronous fetch,
// ordered by fetch-start generation rather than completion order.
//
// Concurrent refreshes race: a slow fetch started earlier may finish
// after a newer one. Begin hands out a generation number at fetch start;
// Commit applies the result only while that generation is still the
// newest, so a stale response is discarded instead of overwriting fresh
// data. Readers always see the most recently committed snapshot, which
// also serves as the fallback when a refresh fails outright.
type Snapshot[T any] struct {
	mu        sync.Mutex
	latestGen uint64
	committed uint64
	value     T
	hasValue  bool
}

// Begin registers a new fetch and returns its generation token.
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestGen++
	return s.latestGen
}

// Commit stores the fetched value unless a later-started fetch already
// committed. It reports whether the value was applied.
func (s *Snapshot[T]) Commit(gen uint64, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.committed {
		return false
	}
	s.committed = gen
	s.value = value
	s.hasValue = true
	return true
}

// Get returns the last committed value, if any.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.hasValue
}

// Invalidate drops the committed value without disturbing generation
// ordering; used when the owning view is torn down.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.hasValue = false
}
