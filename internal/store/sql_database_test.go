// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/migrations"
	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T, dsn string) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "mysql://localhost/db", "users.db"} {
		_, err := NewConnect(context.Background(), config.DB{DSN: dsn}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN, "dsn %q", dsn)
	}
}

func TestNewConnect_SQLiteMemory(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, migrations.DialectSQLite, db.Dialect())
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestStorages_Close_Nil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

// TestUserRepository_SQLite runs the repository against a real migrated
// SQLite database file.
func TestUserRepository_SQLite(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "users.db")
	repo := newSQLiteStorages(t, dsn).UserRepository
	ctx := context.Background()

	users, err := repo.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	alice, err := repo.InsertUser(ctx, models.User{Name: "alice", Role: models.RoleAdmin, Password: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), alice.ID)
	assert.Equal(t, models.RoleAdmin, alice.Role)

	bob, err := repo.InsertUser(ctx, models.User{ID: 10, Name: "bob", Role: models.RoleUser, Password: "h2"})
	require.NoError(t, err)
	assert.Equal(t, int32(10), bob.ID)

	_, err = repo.InsertUser(ctx, models.User{ID: 10, Name: "dup", Role: models.RoleUser, Password: "h3"})
	assert.ErrorIs(t, err, ErrUniqueConstraintViolation)

	_, err = repo.InsertUser(ctx, models.User{Name: "", Role: models.RoleUser, Password: "h3"})
	assert.ErrorIs(t, err, ErrUniqueConstraintViolation, "empty name violates the check constraint")

	got, err := repo.GetUserByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, bob, got)

	_, err = repo.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrRowNotFound)

	updated, err := repo.UpdateUser(ctx, models.User{ID: 10, Name: "robert", Role: models.RoleAdmin, Password: "h4"})
	require.NoError(t, err)
	assert.Equal(t, "robert", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = repo.UpdateUser(ctx, models.User{ID: 42, Name: "ghost", Role: models.RoleUser, Password: "x"})
	assert.ErrorIs(t, err, ErrRowNotFound)

	users, err = repo.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int32(1), users[0].ID)
	assert.Equal(t, int32(10), users[1].ID)

	require.NoError(t, repo.DeleteUser(ctx, 10))
	require.NoError(t, repo.DeleteUser(ctx, 10))

	_, err = repo.GetUserByID(ctx, 10)
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestNewDB_PlaceholderFormatFollowsDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: migrations.DialectPostgres, want: "WHERE id = $1"},
		{dialect: migrations.DialectSQLite, want: "WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, args, err := buildSelectUserByIDQuery(db.builder, 7)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(query, tt.want), query)
			assert.Equal(t, []any{int32(7)}, args)
		})
	}
}

func TestNewDB_PostgresInsertNumbersEveryPlaceholder(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, nil, logger.Nop())

	query, args, err := buildInsertUserQuery(db.builder, db.Dialect(), models.User{ID: 5, Name: "bob", Role: models.RoleUser, Password: "h"})
	require.NoError(t, err)

	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$4")
	assert.NotContains(t, query, "?")
	assert.Len(t, args, 4)
}
