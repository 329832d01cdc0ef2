package postgres

import (
	"context"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScenariosRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ScenariosRepo) With(db DB) *ScenariosRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ScenariosRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Get retrieves a scenario by its ID.
//
// Returns:
//   - *domain.Scenario: the scenario when found.
//   - error: repository.ErrNotFound if the scenario is not found.
func (r *ScenariosRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	const op = "postgres.ScenariosRepo.Get"

	db := r.handle()

	var s domain.Scenario
	err := db.QueryRow(ctx,
		`SELECT id, title, duration_minutes, player_count_max, extra_preparation_minutes
		 FROM scenarios WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Title, &s.DurationMinutes, &s.PlayerCountMax, &s.ExtraPrepMinutes)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// List lists all scenarios ordered by title.
func (r *ScenariosRepo) List(ctx context.Context) ([]domain.Scenario, error) {
	const op = "postgres.ScenariosRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, title, duration_minutes, player_count_max, extra_preparation_minutes
		 FROM scenarios
		 ORDER BY title`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Scenario
	for rows.Next() {
		var s domain.Scenario
		if err := rows.Scan(&s.ID, &s.Title, &s.DurationMinutes, &s.PlayerCountMax, &s.ExtraPrepMinutes); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
