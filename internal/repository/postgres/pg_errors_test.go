package postgres

import (
	"errors"
	"fmt"
	"testing"

	repository "github.com/ayase-lab/mmadmin/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	// Errors surface from pgx wrapped in operation context, so detection
	// has to work through the wrap chain on the pgx v5 error type.
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"}), true},
		{"deadlock detected", fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"unique violation", fmt.Errorf("tx: %w", &pgconn.PgError{Code: "23505"}), false},
		{"plain error", errors.New("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestWrapDBErr(t *testing.T) {
	t.Parallel()

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()

		err := wrapDBErr("postgres.test", pgx.ErrNoRows)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("wrapDBErr(ErrNoRows) = %v, want ErrNotFound", err)
		}
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		t.Parallel()

		err := wrapDBErr("postgres.test", &pgconn.PgError{Code: "23505"})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("wrapDBErr(23505) = %v, want ErrConflict", err)
		}
	})

	t.Run("other errors wrap with the op", func(t *testing.T) {
		t.Parallel()

		base := errors.New("boom")
		err := wrapDBErr("postgres.test", base)
		if !errors.Is(err, base) {
			t.Fatalf("wrapDBErr lost the cause: %v", err)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()

		if err := wrapDBErr("postgres.test", nil); err != nil {
			t.Fatalf("wrapDBErr(nil) = %v", err)
		}
	})
}
