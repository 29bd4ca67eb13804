package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Mapping:
//   - 23505 unique_violation, 23514 check_violation → [ErrUniqueConstraintViolation]
//   - anything else, including non-PostgreSQL errors → [ErrDatabase]
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	if isConstraintViolation(postgresError(err)) {
		return fmt.Errorf("%w: %w", ErrUniqueConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", ErrDatabase, err)
}

func isConstraintViolation(code string) bool {
	switch code {
	case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
		return true
	}
	return false
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
