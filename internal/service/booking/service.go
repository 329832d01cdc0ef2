package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	"github.com/ayase-lab/mmadmin/internal/schedule"
	"github.com/ayase-lab/mmadmin/internal/uow"
	"github.com/google/uuid"
)

type Config struct {
	// DeadlineDays is how many days ahead of the target date a request
	// must be filed. Inclusive: a request exactly DeadlineDays out is
	// still accepted.
	DeadlineDays int
}

// Service handles the public side of private bookings: customers apply
// for an empty (date, venue, band) slot and staff follow up by hand.
// Nothing here creates performance events.
type Service struct {
	store *postgresrepo.Store
	uow   *uow.UoW
	cfg   Config
	now   func() time.Time
}

func New(store *postgresrepo.Store, cfg Config) *Service {
	return &Service{
		store: store,
		uow:   uow.NewUoW(store),
		cfg:   cfg,
		now:   time.Now,
	}
}

// Request is a customer's private-booking application.
type Request struct {
	Date         string          `json:"date"`
	VenueRef     string          `json:"venue"`
	TimeBand     domain.TimeBand `json:"time_band"`
	CustomerName string          `json:"customer_name"`
	Contact      string          `json:"contact"`
	Notes        string          `json:"notes,omitempty"`
}

// SubmitRequest validates and stores a private-booking request.
//
// Validation order matters for the error the customer sees: field checks
// first, then the deadline, then slot occupancy. A request past the
// deadline reports the deadline even when the slot is also taken.
//
// Returns:
//   - uuid.UUID: the stored request's id.
//   - error: booking.ErrDeadlinePassed, booking.ErrSlotOccupied, or
//     booking.ErrInvalidRequest.
func (s *Service) SubmitRequest(ctx context.Context, req Request) (uuid.UUID, error) {
	const op = "service.booking.SubmitRequest"

	target, err := validate(&req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	if schedule.DaysUntil(s.now(), target) < s.cfg.DeadlineDays {
		return uuid.Nil, fmt.Errorf("%s:%w", op, ErrDeadlinePassed)
	}

	occupied, err := s.slotOccupied(ctx, &req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}
	if occupied {
		return uuid.Nil, fmt.Errorf("%s:%w", op, ErrSlotOccupied)
	}

	record := &postgresrepo.BookingRequest{
		ID:           uuid.New(),
		Date:         req.Date,
		VenueRef:     req.VenueRef,
		TimeBand:     req.TimeBand,
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Notes:        req.Notes,
	}

	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		return s.store.Bookings().With(tx).Insert(ctx, record)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	return record.ID, nil
}

// RequestsForDate lists the pending applications for one date. Admin use.
func (s *Service) RequestsForDate(ctx context.Context, date string) ([]postgresrepo.BookingRequest, error) {
	const op = "service.booking.RequestsForDate"

	out, err := s.store.Bookings().ListForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// slotOccupied reports whether any open or blocking event already sits
// in the requested band at the requested venue. Neutral events (rentals,
// memos) and cancellations do not occupy the slot. The scan resolves
// every reference form of the venue, so an event stored under the
// venue's short name still blocks a request made with its id.
func (s *Service) slotOccupied(ctx context.Context, req *Request) (bool, error) {
	venues, err := s.store.Venues().List(ctx)
	if err != nil {
		return false, err
	}

	canonical, keys := schedule.NewVenueResolver(venues).CanonicalRef(req.VenueRef)
	req.VenueRef = canonical

	events, err := s.store.Events().ListForDateVenue(ctx, req.Date, keys)
	if err != nil {
		return false, err
	}

	var inBand []domain.PerformanceEvent
	for _, e := range events {
		if schedule.ClassifyBand(e) == req.TimeBand {
			inBand = append(inBand, e)
		}
	}

	open, blocking := schedule.SplitByKind(inBand)
	return len(open)+len(blocking) > 0, nil
}

func validate(req *Request) (time.Time, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Contact = strings.TrimSpace(req.Contact)

	if req.CustomerName == "" || req.Contact == "" || req.VenueRef == "" {
		return time.Time{}, ErrInvalidRequest
	}

	switch req.TimeBand {
	case domain.BandMorning, domain.BandAfternoon, domain.BandEvening:
	default:
		return time.Time{}, ErrInvalidRequest
	}

	target, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidRequest
	}

	return target, nil
}
