package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	redisx "github.com/ayase-lab/mmadmin/internal/redis"
	"github.com/ayase-lab/mmadmin/internal/repository"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	redisrepo "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/schedule"
	"github.com/google/uuid"
)

type Config struct {
	RosterTTL time.Duration
}

// Service reconciles a performance's GM roster with its reservation
// records into one display roster.
type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.RosterTTL <= 0 {
		cfg.RosterTTL = 30 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// DisplayRoster is the reconciled roster plus the backed-staff headcount.
type DisplayRoster struct {
	Entries            []schedule.RosterEntry `json:"entries"`
	ParticipatingStaff int                    `json:"participating_staff"`
}

// EventRoster builds the display roster for one performance.
//
// Reservation participants are re-checked against the staff directory at
// read time. The stored is_staff_participation flag was derived by name
// matching and the directory may have changed since.
//
// Returns:
//   - *DisplayRoster: the reconciled roster.
//   - error: roster.ErrEventNotFound when the event does not exist.
func (s *Service) EventRoster(ctx context.Context, eventID uuid.UUID) (*DisplayRoster, error) {
	const op = "service.roster.EventRoster"

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyEventRoster(eventID),
		s.cfg.RosterTTL,
		func(ctx context.Context) (DisplayRoster, error) {
			return s.buildRoster(ctx, eventID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &out, nil
}

func (s *Service) buildRoster(ctx context.Context, eventID uuid.UUID) (DisplayRoster, error) {
	event, err := s.store.Events().Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DisplayRoster{}, ErrEventNotFound
		}
		return DisplayRoster{}, err
	}

	participants, err := s.store.Reservations().ListForEvent(ctx, eventID)
	if err != nil {
		return DisplayRoster{}, err
	}

	staff, err := s.store.Staff().List(ctx)
	if err != nil {
		return DisplayRoster{}, err
	}

	markStaffParticipation(participants, staff)

	entries := schedule.ReconcileRoster(event.GMRoster, participants)

	return DisplayRoster{
		Entries:            entries,
		ParticipatingStaff: schedule.ParticipatingStaffCount(entries),
	}, nil
}

// markStaffParticipation refreshes the name-derived staff flag against
// the current directory. Two different people sharing a display name
// cannot be told apart here; the reconciliation surfaces the entry
// rather than guessing.
func markStaffParticipation(participants []domain.ReservationParticipant, staff []domain.StaffMember) {
	names := make(map[string]bool, len(staff))
	for _, m := range staff {
		names[strings.TrimSpace(m.Name)] = true
	}
	for i := range participants {
		if names[strings.TrimSpace(participants[i].ParticipantName)] {
			participants[i].IsStaffParticipation = true
		}
	}
}
