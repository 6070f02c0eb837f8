package repository

import (
	"errors"

	"github.com/lib/pq"
)

// isUniqueViolation reports whether err is a Postgres unique_violation.
// The unique indexes are the canonical arbiter for duplicate likes,
// profiles and emails; concurrent inserts that slip past the
// application-level pre-checks land here.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
