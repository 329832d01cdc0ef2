package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsRetryable reports whether a failed transaction may be retried:
// serialization failures and deadlocks under the serializable isolation
// level RunTx uses.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return true
		}
	}

	return false
}
