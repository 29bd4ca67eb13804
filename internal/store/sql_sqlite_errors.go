package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// extended result codes of mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. UNIQUE, PRIMARY KEY and CHECK
// constraint failures map to [ErrUniqueConstraintViolation], the rest to
// [ErrDatabase].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique,
			sqlite3.ErrConstraintPrimaryKey,
			sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%w: %w", ErrUniqueConstraintViolation, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrDatabase, err)
}
