package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works on both supported dialects; the dialect only
// changes placeholders and the role cast.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserByID implements [UserRepository].
func (r *userRepository) GetUserByID(ctx context.Context, id int32) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, id)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.GetUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrDatabase, ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		err = r.db.classify(err)
		log.Debug().Err(err).Str("func", "*userRepository.GetUserByID").Int32("id", id).Msg("error selecting user")
		return models.User{}, err
	}

	return user, nil
}

// GetAllUsers implements [UserRepository].
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.builder)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w: %w", ErrDatabase, ErrBuildingSQLQuery, err)
	}

	users := make([]models.User, 0)
	if err = r.db.SelectContext(ctx, &users, query, args...); err != nil {
		err = r.db.classify(err)
		log.Debug().Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error selecting users")
		return nil, err
	}

	return users, nil
}

// InsertUser implements [UserRepository].
//
// Error handling:
//   - duplicate id or violated check constraint → [ErrUniqueConstraintViolation]
//   - any other driver-level error → [ErrDatabase]
func (r *userRepository) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, r.db.dialect, user)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.InsertUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrDatabase, ErrBuildingSQLQuery, err)
	}

	var saved models.User
	if err = r.db.GetContext(ctx, &saved, query, args...); err != nil {
		err = r.db.classify(err)
		log.Debug().Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		return models.User{}, err
	}

	return saved, nil
}

// UpdateUser implements [UserRepository]. An id that matches no row
// returns [ErrRowNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, r.db.dialect, user)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrDatabase, ErrBuildingSQLQuery, err)
	}

	var saved models.User
	if err = r.db.GetContext(ctx, &saved, query, args...); err != nil {
		err = r.db.classify(err)
		log.Debug().Err(err).Str("func", "*userRepository.UpdateUser").Int32("id", user.ID).Msg("error updating user")
		return models.User{}, err
	}

	return saved, nil
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, id int32) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w: %w", ErrDatabase, ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		log.Debug().Err(err).Str("func", "*userRepository.DeleteUser").Int32("id", id).Msg("error deleting user")
		return err
	}

	return nil
}
