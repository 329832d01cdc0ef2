package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventsRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *EventsRepo) With(db DB) *EventsRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *EventsRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const eventColumns = `id, date, venue, scenario_id, scenario_title, category,
	time_band, start_time, end_time, max_participants, current_participants,
	is_cancelled, is_private_booking, gm_roster, notes, created_at, updated_at`

// Get retrieves a performance event by its ID.
//
// Returns:
//   - *domain.PerformanceEvent: the event when found.
//   - error: repository.ErrNotFound if the event is not found.
func (r *EventsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PerformanceEvent, error) {
	const op = "postgres.EventsRepo.Get"

	db := r.handle()

	row := db.QueryRow(ctx,
		`SELECT `+eventColumns+`
		 FROM schedule_events WHERE id = $1`,
		id,
	)
	e, err := scanEvent(row)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return e, nil
}

// ListForMonth lists every event of a month, cancelled ones included;
// cancellation is a display state, not a deletion. Dates are stored as
// YYYY-MM-DD text (the business's local day), so a month is a prefix.
//
// Parameters:
//   - ctx: request-scoped context for cancellation and timeouts.
//   - year, month: calendar month to list (month is 1-12).
func (r *EventsRepo) ListForMonth(ctx context.Context, year, month int) ([]domain.PerformanceEvent, error) {
	const op = "postgres.EventsRepo.ListForMonth"

	db := r.handle()

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)
	rows, err := db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM schedule_events
		 WHERE date LIKE $1
		 ORDER BY date, start_time, created_at`,
		prefix,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.PerformanceEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ListForDateVenue lists the non-cancelled events of one venue on one
// date; the slot-conflict resolver scans exactly this set. venueKeys
// must carry every reference form the venue is known under (id, name,
// short name), normalized lowercase, since historic rows store
// whichever form they were created with.
func (r *EventsRepo) ListForDateVenue(ctx context.Context, date string, venueKeys []string) ([]domain.PerformanceEvent, error) {
	const op = "postgres.EventsRepo.ListForDateVenue"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM schedule_events
		 WHERE date = $1 AND lower(btrim(venue)) = ANY($2) AND NOT is_cancelled
		 ORDER BY start_time`,
		date, venueKeys,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.PerformanceEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// Insert creates a new performance event row.
func (r *EventsRepo) Insert(ctx context.Context, e *domain.PerformanceEvent) error {
	const op = "postgres.EventsRepo.Insert"

	db := r.handle()

	roster, err := json.Marshal(e.GMRoster)
	if err != nil {
		return wrapDBErr(op, err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO schedule_events(
			id, date, venue, scenario_id, scenario_title, category,
			time_band, start_time, end_time, max_participants,
			current_participants, is_cancelled, is_private_booking,
			gm_roster, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())`,
		e.ID, e.Date, e.VenueRef, nullUUID(e.ScenarioID), e.ScenarioTitle, e.Category,
		nullString(string(e.TimeBand)), e.StartTime, e.EndTime, e.MaxParticipants,
		e.CurrentParticipants, e.IsCancelled, e.IsPrivateBooking,
		roster, e.Notes,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Update rewrites an existing event row.
//
// Returns:
//   - error: repository.ErrNotFound if no row has the event's ID.
func (r *EventsRepo) Update(ctx context.Context, e *domain.PerformanceEvent) error {
	const op = "postgres.EventsRepo.Update"

	db := r.handle()

	roster, err := json.Marshal(e.GMRoster)
	if err != nil {
		return wrapDBErr(op, err)
	}

	tag, err := db.Exec(ctx,
		`UPDATE schedule_events SET
			date = $2, venue = $3, scenario_id = $4, scenario_title = $5,
			category = $6, time_band = $7, start_time = $8, end_time = $9,
			max_participants = $10, current_participants = $11,
			is_cancelled = $12, is_private_booking = $13, gm_roster = $14,
			notes = $15, updated_at = now()
		 WHERE id = $1`,
		e.ID, e.Date, e.VenueRef, nullUUID(e.ScenarioID), e.ScenarioTitle,
		e.Category, nullString(string(e.TimeBand)), e.StartTime, e.EndTime,
		e.MaxParticipants, e.CurrentParticipants,
		e.IsCancelled, e.IsPrivateBooking, roster, e.Notes,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

// SetCancelled soft-deletes (or restores) an event.
func (r *EventsRepo) SetCancelled(ctx context.Context, id uuid.UUID, cancelled bool) error {
	const op = "postgres.EventsRepo.SetCancelled"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE schedule_events
		 SET is_cancelled = $2, updated_at = now()
		 WHERE id = $1`,
		id, cancelled,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

// UpdateParticipantCount sets the current participant count. The count is
// optimistic display state; the authoritative value is whatever the next
// month fetch returns.
func (r *EventsRepo) UpdateParticipantCount(ctx context.Context, id uuid.UUID, count int) error {
	const op = "postgres.EventsRepo.UpdateParticipantCount"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE schedule_events
		 SET current_participants = $2, updated_at = now()
		 WHERE id = $1`,
		id, count,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.PerformanceEvent, error) {
	var (
		e          domain.PerformanceEvent
		scenarioID *uuid.UUID
		timeBand   *string
		roster     []byte
	)
	err := row.Scan(
		&e.ID, &e.Date, &e.VenueRef, &scenarioID, &e.ScenarioTitle, &e.Category,
		&timeBand, &e.StartTime, &e.EndTime, &e.MaxParticipants,
		&e.CurrentParticipants, &e.IsCancelled, &e.IsPrivateBooking,
		&roster, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scenarioID != nil {
		e.ScenarioID = *scenarioID
	}
	if timeBand != nil {
		e.TimeBand = domain.TimeBand(*timeBand)
	}
	if len(roster) > 0 {
		if err := json.Unmarshal(roster, &e.GMRoster); err != nil {
			// A malformed roster blob must not sink the whole calendar;
			// the event simply shows without assignments.
			e.GMRoster = nil
		}
	}

	e.Kind = domain.KindOf(e.Category, e.IsPrivateBooking)

	return &e, nil
}

func nullUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
