// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/crypto"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/models"
)

// userService is the concrete implementation of UserService. It hashes
// passwords before they reach the repository and otherwise delegates.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
// It performs no input validation, wrap it with NewUserValidationService for that.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (u *userService) GetUser(ctx context.Context, id int32) (models.User, error) {
	user, err := u.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	return user, nil
}

// CreateUser hashes the password and inserts the user. A positive user.ID is
// kept as the primary key, otherwise the store assigns one.
func (u *userService) CreateUser(ctx context.Context, user models.UserForCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := u.hasher.Hash(user.Password)
	if err != nil {
		log.Debug().Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashFailed, err)
	}
	user.Password = hash

	created, err := u.userRepository.InsertUser(ctx, user.ToUser())
	if err != nil {
		log.Debug().Err(err).Int32("id", user.ID).Str("name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser hashes the new password and overwrites the user with the given id.
func (u *userService) UpdateUser(ctx context.Context, id int32, user models.UserForCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := u.hasher.Hash(user.Password)
	if err != nil {
		log.Debug().Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashFailed, err)
	}
	user.Password = hash
	user.ID = id

	updated, err := u.userRepository.UpdateUser(ctx, user.ToUser())
	if err != nil {
		log.Debug().Err(err).Int32("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (u *userService) DeleteUser(ctx context.Context, id int32) error {
	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int32("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func (u *userService) EnsureAdmin(ctx context.Context, name, password string) error {
	if password == "" {
		return nil
	}

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("error checking for existing users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	admin, err := u.CreateUser(ctx, models.UserForCreate{
		Name:     name,
		Role:     models.RoleAdmin,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("error creating administrator: %w", err)
	}

	u.logger.Info().Int32("id", admin.ID).Str("name", admin.Name).Msg("administrator created")
	return nil
}
