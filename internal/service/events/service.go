package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	redisx "github.com/ayase-lab/mmadmin/internal/redis"
	"github.com/ayase-lab/mmadmin/internal/repository"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	redisrepo "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/schedule"
	"github.com/ayase-lab/mmadmin/internal/uow"
	"github.com/google/uuid"
)

type Config struct {
	EventSummaryTTL time.Duration
	BandDefaults    map[domain.TimeBand]domain.BandWindow
}

// Service is the schedule-editing workflow: saving a performance runs
// slot-conflict resolution and overlap validation before anything is
// written, and every committed write invalidates the cached views and
// notifies other sessions.
type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisx.EventsPubSub
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisx.EventsPubSub,
	cfg Config,
) *Service {
	if cfg.EventSummaryTTL <= 0 {
		cfg.EventSummaryTTL = 30 * time.Second
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

// SaveResult reports what was persisted, including any adjustment the
// slot-conflict resolver made to the requested times.
type SaveResult struct {
	Event         domain.PerformanceEvent `json:"event"`
	AdjustedStart bool                    `json:"adjusted_start"`
}

// SaveEvent validates and persists a draft performance event.
//
// The pipeline: normalize the draft, resolve the start time against the
// same-day same-venue events (pushing it past the preceding
// performance's preparation buffer), then run the hard overlap check.
// Nothing is written when validation fails, so the caller's draft state
// survives untouched. A failed save must never cost an admin their
// half-filled form.
//
// Returns:
//   - *SaveResult: the persisted event with final times.
//   - error: events.ErrScheduleConflict when the slot cannot hold the
//     performance; events.ErrEventNotFound when updating a missing event.
func (s *Service) SaveEvent(ctx context.Context, draft domain.PerformanceEvent) (*SaveResult, error) {
	const op = "service.events.SaveEvent"

	if err := validateDraft(&draft); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	isNew := draft.ID == uuid.Nil
	if isNew {
		draft.ID = uuid.New()
	}
	draft.Kind = domain.KindOf(draft.Category, draft.IsPrivateBooking)

	scenario, err := s.scenarioFor(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	// Canonicalize the venue reference before the same-slot scan: the
	// existing rows may carry the venue's id, name or short name, and an
	// event hidden behind a different reference form would slip past both
	// the start resolver and the overlap check.
	venueKeys, err := s.canonicalizeVenue(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	sameDay, err := s.store.Events().ListForDateVenue(ctx, draft.Date, venueKeys)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	adjusted, err := s.resolveTimes(&draft, scenario, sameDay)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if ov := schedule.CheckOverlap(draft, schedule.PrepMinutes(scenario), sameDay, s.prepLookup(ctx)); ov != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, ov.Reason, ErrScheduleConflict)
	}

	if err := s.persist(ctx, &draft, isNew); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &SaveResult{Event: draft, AdjustedStart: adjusted}, nil
}

// GetEvent returns one event with its computed availability.
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*domain.PerformanceEvent, *domain.Availability, error) {
	const op = "service.events.GetEvent"

	event, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyEventSummary(id),
		s.cfg.EventSummaryTTL,
		func(ctx context.Context) (domain.PerformanceEvent, error) {
			e, err := s.store.Events().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.PerformanceEvent{}, ErrEventNotFound
				}
				return domain.PerformanceEvent{}, err
			}
			return *e, nil
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s:%w", op, err)
	}

	availability := schedule.EventAvailability(event)

	return &event, &availability, nil
}

// CancelEvent soft-cancels a performance. Cancelled events drop out of
// availability and conflict scanning but stay in the month view.
func (s *Service) CancelEvent(ctx context.Context, id uuid.UUID) error {
	const op = "service.events.CancelEvent"

	event, err := s.store.Events().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Events().With(tx).SetCancelled(ctx, id, true); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			s.invalidate(ctx, event)
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// UpdateParticipantCount writes the new optimistic count. The caller
// treats this as fire-and-forget display state; the authoritative count
// is whatever the next month fetch returns.
func (s *Service) UpdateParticipantCount(ctx context.Context, id uuid.UUID, count int) error {
	const op = "service.events.UpdateParticipantCount"

	if count < 0 {
		return fmt.Errorf("%s: negative count", op)
	}

	event, err := s.store.Events().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Events().With(tx).UpdateParticipantCount(ctx, id, count); err != nil {
			return err
		}

		after(func(ctx context.Context) {
			s.invalidate(ctx, event)
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// SyncParticipantCount recomputes the optimistic count from the actual
// confirmed reservation rows and stores it.
func (s *Service) SyncParticipantCount(ctx context.Context, id uuid.UUID) (int, error) {
	const op = "service.events.SyncParticipantCount"

	count, err := s.store.Reservations().CountConfirmedForEvent(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if err := s.UpdateParticipantCount(ctx, id, count); err != nil {
		return 0, err
	}

	return count, nil
}

// BandDefaults returns the per-band default windows used to pre-fill
// new-event forms. Pure config pass-through; the core never reads it.
func (s *Service) BandDefaults() map[domain.TimeBand]domain.BandWindow {
	return s.cfg.BandDefaults
}

func (s *Service) persist(ctx context.Context, e *domain.PerformanceEvent, isNew bool) error {
	run := func() error {
		return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
			repo := s.store.Events().With(tx)

			var err error
			if isNew {
				err = repo.Insert(ctx, e)
			} else {
				err = repo.Update(ctx, e)
			}
			if err != nil {
				return err
			}

			after(func(ctx context.Context) {
				s.invalidate(ctx, e)
			})

			return nil
		})
	}

	err := run()
	if err != nil && postgresrepo.IsRetryable(err) {
		err = run()
	}
	return err
}

func (s *Service) invalidate(ctx context.Context, e *domain.PerformanceEvent) {
	_ = s.cache.InvalidateEvent(ctx, e.ID)
	if year, month, ok := splitDate(e.Date); ok {
		_ = s.cache.InvalidateMonth(ctx, year, month)
	}
	_ = s.pubsub.PublishEventChanged(ctx, e.ID, e.Date)
}

// resolveTimes runs the slot-conflict resolver over the draft, replacing
// its start/end with the adjusted values. Reports whether the start moved.
func (s *Service) resolveTimes(
	draft *domain.PerformanceEvent,
	scenario *domain.Scenario,
	sameDay []domain.PerformanceEvent,
) (bool, error) {
	candidate, err := schedule.ParseClock(draft.StartTime)
	if err != nil {
		return false, fmt.Errorf("invalid start_time: %w", ErrInvalidDraft)
	}

	start, end := schedule.ResolveStart(candidate, scenario, sameDay, draft.ID)

	adjusted := start != candidate
	draft.StartTime = start.String()

	// Scenario performances always take their end from the scenario
	// duration. Unattached events (venue rentals, memos) keep a valid
	// user-chosen end unless the start moved past it.
	if scenario != nil || adjusted || !validEnd(draft.StartTime, draft.EndTime) {
		draft.EndTime = end.String()
	}

	return adjusted, nil
}

// canonicalizeVenue rewrites the draft's venue reference to the
// canonical id and returns every key form the venue is known under.
// References to venues missing from the directory pass through as-is.
func (s *Service) canonicalizeVenue(ctx context.Context, draft *domain.PerformanceEvent) ([]string, error) {
	venues, err := s.store.Venues().List(ctx)
	if err != nil {
		return nil, err
	}

	canonical, keys := schedule.NewVenueResolver(venues).CanonicalRef(draft.VenueRef)
	draft.VenueRef = canonical
	return keys, nil
}

func (s *Service) scenarioFor(ctx context.Context, draft *domain.PerformanceEvent) (*domain.Scenario, error) {
	if draft.ScenarioID == uuid.Nil {
		// Unattached events (venue rentals, memos) have no scenario and
		// take the base preparation and default duration.
		return nil, nil
	}

	sc, err := s.store.Scenarios().Get(ctx, draft.ScenarioID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}

	if draft.ScenarioTitle == "" {
		draft.ScenarioTitle = sc.Title
	}
	if draft.MaxParticipants == 0 {
		draft.MaxParticipants = sc.PlayerCountMax
	}

	return sc, nil
}

// prepLookup resolves each existing event's preparation buffer from its
// scenario, falling back to the base buffer when the scenario is
// missing or unattached.
func (s *Service) prepLookup(ctx context.Context) func(e domain.PerformanceEvent) int {
	cache := make(map[uuid.UUID]int)
	return func(e domain.PerformanceEvent) int {
		if e.ScenarioID == uuid.Nil {
			return schedule.BasePrepMinutes
		}
		if prep, ok := cache[e.ScenarioID]; ok {
			return prep
		}
		prep := schedule.BasePrepMinutes
		if sc, err := s.store.Scenarios().Get(ctx, e.ScenarioID); err == nil {
			prep = schedule.PrepMinutes(sc)
		}
		cache[e.ScenarioID] = prep
		return prep
	}
}

func validateDraft(draft *domain.PerformanceEvent) error {
	if draft.Date == "" || draft.VenueRef == "" {
		return ErrInvalidDraft
	}
	if _, ok := splitDateString(draft.Date); !ok {
		return ErrInvalidDraft
	}
	if _, err := schedule.ParseClock(draft.StartTime); err != nil {
		return ErrInvalidDraft
	}
	if draft.Category == "" {
		draft.Category = domain.CategoryOpen
	}
	return nil
}

func validEnd(start, end string) bool {
	s, err1 := schedule.ParseClock(start)
	e, err2 := schedule.ParseClock(end)
	return err1 == nil && err2 == nil && s < e
}

func splitDate(date string) (year, month int, ok bool) {
	parts, valid := splitDateString(date)
	if !valid {
		return 0, 0, false
	}
	return parts[0], parts[1], true
}

func splitDateString(date string) ([3]int, bool) {
	var out [3]int
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return out, false
		}
		out[i] = n
	}
	if out[1] > 12 || out[2] > 31 {
		return out, false
	}
	return out, true
}
