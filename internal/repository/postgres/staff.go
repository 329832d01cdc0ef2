package postgres

import (
	"context"

	"github.com/ayase-lab/mmadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *StaffRepo) With(db DB) *StaffRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *StaffRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List lists the staff directory; active members first so assignment
// pickers show usable names at the top.
func (r *StaffRepo) List(ctx context.Context) ([]domain.StaffMember, error) {
	const op = "postgres.StaffRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, is_active
		 FROM staff
		 ORDER BY is_active DESC, name`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.StaffMember
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.IsActive); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
