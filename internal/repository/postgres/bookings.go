package postgres

import (
	"context"
	"time"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRequest is a customer's private-booking application for an
// empty (date, venue, band) slot; staff turn accepted requests into
// actual private performances by hand.
type BookingRequest struct {
	ID           uuid.UUID       `json:"id"`
	Date         string          `json:"date"`
	VenueRef     string          `json:"venue"`
	TimeBand     domain.TimeBand `json:"time_band"`
	CustomerName string          `json:"customer_name"`
	Contact      string          `json:"contact"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BookingRequestsRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRequestsRepo) With(db DB) *BookingRequestsRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRequestsRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Insert stores a new private-booking request.
func (r *BookingRequestsRepo) Insert(ctx context.Context, req *BookingRequest) error {
	const op = "postgres.BookingRequestsRepo.Insert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO booking_requests(id, date, venue, time_band, customer_name, contact, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		req.ID, req.Date, req.VenueRef, req.TimeBand, req.CustomerName, req.Contact, req.Notes,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ListForDate lists the requests targeting one calendar date.
func (r *BookingRequestsRepo) ListForDate(ctx context.Context, date string) ([]BookingRequest, error) {
	const op = "postgres.BookingRequestsRepo.ListForDate"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, date, venue, time_band, customer_name, contact, notes, created_at
		 FROM booking_requests
		 WHERE date = $1
		 ORDER BY created_at`,
		date,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []BookingRequest
	for rows.Next() {
		var b BookingRequest
		if err := rows.Scan(&b.ID, &b.Date, &b.VenueRef, &b.TimeBand, &b.CustomerName, &b.Contact, &b.Notes, &b.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
