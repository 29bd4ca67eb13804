package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/crypto"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the stored bcrypt hashes and issues HS384
// tokens whose subject is the user id.
type authService struct {
	// userRepository is used to look up the user presenting credentials.
	userRepository store.UserRepository

	// hasher compares the presented password with the stored hash.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without an expiry.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a user by id and password.
//
// An unknown id, a failed lookup and a wrong password are all reported as
// ErrCredentialNotMatch so that callers cannot tell which check failed.
// The underlying cause only reaches the log.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, credentials.ID)
	if err != nil {
		log.Debug().Err(err).Int32("id", credentials.ID).Msg("user lookup during login failed")
		return models.Token{}, ErrCredentialNotMatch
	}

	if err = a.hasher.Compare(user.Password, credentials.Password); err != nil {
		log.Debug().Err(err).Int32("id", credentials.ID).Msg("wrong password")
		return models.Token{}, ErrCredentialNotMatch
	}

	return a.CreateToken(ctx, user)
}

// CreateToken issues a signed JWT for the given user.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, wrong algorithm, expired, malformed
// subject) is normalised to ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
