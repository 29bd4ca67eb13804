package store

import "errors"

// Sentinel errors returned by repository methods. Every failure of the
// gateway wraps exactly one of them; callers should use [errors.Is].
var (
	// ErrRowNotFound is returned when a query expected to match exactly one
	// row produces an empty result set.
	ErrRowNotFound = errors.New("row not found")

	// ErrUniqueConstraintViolation is returned when a write violates a
	// unique, primary key or check constraint.
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")

	// ErrDatabase is returned for every other driver or connection failure.
	ErrDatabase = errors.New("database error")
)

// Connection-level errors returned while opening a database.
var (
	// ErrUnsupportedDSN is returned when the DSN scheme selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
