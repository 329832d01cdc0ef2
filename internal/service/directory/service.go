package directory

import (
	"context"
	"fmt"

	"github.com/ayase-lab/mmadmin/internal/domain"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
)

// Service serves the reference lists the admin UI populates its pickers
// from. Read-only; the lists are edited out of band.
type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Venues(ctx context.Context) ([]domain.Venue, error) {
	const op = "service.directory.Venues"

	out, err := s.store.Venues().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	return out, nil
}

func (s *Service) Scenarios(ctx context.Context) ([]domain.Scenario, error) {
	const op = "service.directory.Scenarios"

	out, err := s.store.Scenarios().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	return out, nil
}

func (s *Service) Staff(ctx context.Context) ([]domain.StaffMember, error) {
	const op = "service.directory.Staff"

	out, err := s.store.Staff().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	return out, nil
}
