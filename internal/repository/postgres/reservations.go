package postgres

import (
	"context"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationsRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReservationsRepo) With(db DB) *ReservationsRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReservationsRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListForEvent lists every reservation participant of one performance,
// cancelled ones included; the roster reconciliation filters by status
// itself.
func (r *ReservationsRepo) ListForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.ReservationParticipant, error) {
	const op = "postgres.ReservationsRepo.ListForEvent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, schedule_event_id, participant_name, is_staff_participation, status
		 FROM reservation_participants
		 WHERE schedule_event_id = $1
		 ORDER BY created_at`,
		eventID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.ReservationParticipant
	for rows.Next() {
		var p domain.ReservationParticipant
		if err := rows.Scan(&p.ID, &p.ScheduleEventID, &p.ParticipantName, &p.IsStaffParticipation, &p.Status); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// CountConfirmedForEvent counts confirmed participants; used to refresh
// the event's optimistic participant count after reservation changes.
func (r *ReservationsRepo) CountConfirmedForEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	const op = "postgres.ReservationsRepo.CountConfirmedForEvent"

	db := r.handle()

	var n int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM reservation_participants
		 WHERE schedule_event_id = $1 AND status = 'confirmed'`,
		eventID,
	).Scan(&n)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}
