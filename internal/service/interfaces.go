package service

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// AuthService verifies credentials and issues or parses bearer tokens.
type AuthService interface {
	// Login checks the credentials and returns a freshly signed token.
	// Every failure reported to the caller is ErrCredentialNotMatch or
	// ErrTokenCreationFailed.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService implements the operations of the user directory.
// Errors of the persistence gateway are passed through wrapped, so callers
// can still match store.ErrRowNotFound and friends with errors.Is.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int32) (models.User, error)

	// CreateUser hashes the password of user and stores it.
	CreateUser(ctx context.Context, user models.UserForCreate) (models.User, error)

	// UpdateUser overwrites the user with the given id. The id carried in
	// user is ignored.
	UpdateUser(ctx context.Context, id int32, user models.UserForCreate) (models.User, error)
	DeleteUser(ctx context.Context, id int32) error

	// EnsureAdmin inserts an administrator when the directory is empty and
	// password is set. It is a no-op otherwise.
	EnsureAdmin(ctx context.Context, name, password string) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
