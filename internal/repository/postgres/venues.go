package postgres

import (
	"context"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenuesRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *VenuesRepo) With(db DB) *VenuesRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *VenuesRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List lists all venues, permanent ones first.
func (r *VenuesRepo) List(ctx context.Context) ([]domain.Venue, error) {
	const op = "postgres.VenuesRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, short_name, is_temporary
		 FROM venues
		 ORDER BY is_temporary, name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.ShortName, &v.IsTemporary); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
