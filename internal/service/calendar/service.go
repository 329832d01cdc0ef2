package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	redisx "github.com/ayase-lab/mmadmin/internal/redis"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	redisrepo "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/schedule"
)

type Config struct {
	MonthViewTTL time.Duration
	StatsTTL     time.Duration
	// DeadlineDays drives the private-booking affordance on empty slots.
	DeadlineDays int
}

// Service derives the calendar views: it fetches a month's snapshot,
// builds the event index and returns merged day grids. Failed refreshes
// fall back to the last good snapshot with a stale marker instead of
// blanking the calendar.
type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config

	mu    sync.Mutex
	snaps map[string]*schedule.Snapshot[MonthView]
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.MonthViewTTL <= 0 {
		cfg.MonthViewTTL = 30 * time.Second
	}

	if cfg.StatsTTL <= 0 {
		cfg.StatsTTL = 60 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
		snaps: make(map[string]*schedule.Snapshot[MonthView]),
	}
}

// MonthView is the fully derived month grid handed to the UI.
type MonthView struct {
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Days   []schedule.DayGrid `json:"days"`
	Venues []domain.Venue     `json:"venues"`
	// Stale marks a view served from the last good snapshot because the
	// backing fetch failed; the UI shows a "could not refresh" notice.
	Stale bool `json:"stale,omitempty"`
}

// MonthView returns the merged calendar for one month.
//
// Returns:
//   - *MonthView: the derived view; Stale is set when it comes from the
//     last-known-good snapshot after a failed refresh.
//   - error: only when no snapshot exists at all (first load failed).
func (s *Service) MonthView(ctx context.Context, year, month int) (*MonthView, error) {
	const op = "service.calendar.MonthView"

	if err := validateMonth(year, month); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	snap := s.snapshot(year, month)
	gen := snap.Begin()

	view, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyMonthView(year, month),
		s.cfg.MonthViewTTL,
		func(ctx context.Context) (MonthView, error) {
			return s.buildMonthView(ctx, year, month)
		},
	)
	if err != nil {
		// Keep serving the last good snapshot; a single failed refresh
		// must not blank 31 days of calendar cells.
		if last, ok := snap.Get(); ok {
			last.Stale = true
			return &last, nil
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	snap.Commit(gen, view)

	return &view, nil
}

// MonthStats returns the per-category tallies for the dashboard header.
func (s *Service) MonthStats(ctx context.Context, year, month int) (*schedule.CategoryCounts, error) {
	const op = "service.calendar.MonthStats"

	if err := validateMonth(year, month); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	counts, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyMonthStats(year, month),
		s.cfg.StatsTTL,
		func(ctx context.Context) (schedule.CategoryCounts, error) {
			events, err := s.store.Events().ListForMonth(ctx, year, month)
			if err != nil {
				return schedule.CategoryCounts{}, err
			}
			return schedule.CountCategories(events), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &counts, nil
}

func (s *Service) buildMonthView(ctx context.Context, year, month int) (MonthView, error) {
	events, err := s.store.Events().ListForMonth(ctx, year, month)
	if err != nil {
		return MonthView{}, err
	}

	venues, err := s.store.Venues().List(ctx)
	if err != nil {
		return MonthView{}, err
	}

	resolver := schedule.NewVenueResolver(venues)
	idx := schedule.BuildIndex(events, resolver)

	grid := schedule.BuildMonthGrid(year, time.Month(month), idx, venues)
	schedule.AnnotateRequestable(grid, time.Now(), s.cfg.DeadlineDays)

	return MonthView{
		Year:   year,
		Month:  month,
		Days:   grid,
		Venues: venues,
	}, nil
}

// InvalidateSnapshot drops the in-process snapshot of the month a date
// belongs to. Called when another instance broadcasts a mutation, so
// the stale fallback cannot resurrect a superseded grid.
func (s *Service) InvalidateSnapshot(date string) {
	var year, month, day int
	if _, err := fmt.Sscanf(date, "%d-%d-%d", &year, &month, &day); err != nil {
		return
	}

	s.mu.Lock()
	snap, ok := s.snaps[fmt.Sprintf("%04d-%02d", year, month)]
	s.mu.Unlock()

	if ok {
		snap.Invalidate()
	}
}

func (s *Service) snapshot(year, month int) *schedule.Snapshot[MonthView] {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%04d-%02d", year, month)
	snap, ok := s.snaps[key]
	if !ok {
		snap = &schedule.Snapshot[MonthView]{}
		s.snaps[key] = snap
	}
	return snap
}

func validateMonth(year, month int) error {
	if year < 2000 || year > 2200 {
		return ErrInvalidMonth
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}
