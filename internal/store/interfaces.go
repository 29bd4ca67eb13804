// Package store is the persistence gateway of the user directory.
//
// Every driver failure is flattened into one of three sentinels:
// [ErrRowNotFound], [ErrUniqueConstraintViolation] and [ErrDatabase].
// Callers match them with [errors.Is] and never see driver types.
package store

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository reads and writes rows of the "users" table.
type UserRepository interface {
	// GetUserByID returns the user with the given id or [ErrRowNotFound].
	GetUserByID(ctx context.Context, id int32) (models.User, error)

	// GetAllUsers returns every user ordered by id. An empty table yields an
	// empty, non-nil slice.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// InsertUser stores user and returns the persisted row. A positive
	// user.ID is used as the primary key, otherwise the store assigns one.
	InsertUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser overwrites name, role and password of the row with user.ID
	// and returns the persisted row, or [ErrRowNotFound].
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the row with the given id. Deleting a missing row
	// is not an error.
	DeleteUser(ctx context.Context, id int32) error
}
