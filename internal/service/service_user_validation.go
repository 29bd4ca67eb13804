package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/MKhiriev/user-directory/models"
)

// UserValidationService rejects malformed input before it reaches the
// wrapped UserService. Failures wrap ErrInvalidDataProvided together with
// the validator's field sentinels.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int32) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.UserForCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

// UpdateUser leaves the payload id unchecked since the path id replaces it.
func (v *UserValidationService) UpdateUser(ctx context.Context, id int32, user models.UserForCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, models.DeleteRequest{ID: id}, validators.FieldID); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, user, validators.FieldName, validators.FieldRole, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, id, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int32) error {
	if err := v.validator.Validate(ctx, models.DeleteRequest{ID: id}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) EnsureAdmin(ctx context.Context, name, password string) error {
	if password == "" {
		return nil
	}
	admin := models.UserForCreate{Name: name, Role: models.RoleAdmin, Password: password}
	if err := v.validator.Validate(ctx, admin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.EnsureAdmin(ctx, name, password)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
