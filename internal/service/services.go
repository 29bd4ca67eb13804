package service

import (
	"fmt"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/crypto"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, hasher, logger),
	)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		UserService: userService,
	}, nil
}
