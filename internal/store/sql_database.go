package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ErrorClassificator flattens a driver error into one of the gateway sentinels.
type ErrorClassificator interface {
	Classify(err error) error
}

// DB is a dialect-aware connection pool shared by all repositories.
type DB struct {
	*sqlx.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite://, file: and :memory: use
// sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dsn := strings.TrimSpace(cfg.DSN); {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sqlx.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the driver name of the connection ("pgx" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect, db.logger)
}

// classify maps err onto the gateway sentinels. A nil error stays nil.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrRowNotFound, err)
	}
	if db.errorClassificator != nil {
		return db.errorClassificator.Classify(err)
	}
	return fmt.Errorf("%w: %w", ErrDatabase, err)
}
