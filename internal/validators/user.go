package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/user-directory/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the Go field names of the validated structs.
const (
	// FieldID targets the numeric user identifier.
	FieldID = "ID"

	// FieldName targets the display name.
	FieldName = "Name"

	// FieldRole targets the role, which must be Admin or User.
	FieldRole = "Role"

	// FieldPassword targets the plain-text password of an inbound payload.
	FieldPassword = "Password"
)

var knownFields = []string{FieldID, FieldName, FieldRole, FieldPassword}

// fieldErrors maps a struct field to the sentinel reported when it fails.
var fieldErrors = map[string]error{
	FieldID:       ErrInvalidID,
	FieldName:     ErrInvalidName,
	FieldRole:     ErrInvalidRole,
	FieldPassword: ErrEmptyPassword,
}

// UserValidator implements [Validator] for the user directory payloads:
// models.UserForCreate and models.DeleteRequest, in value or pointer form.
// Rules are declared with `validate` struct tags and checked by
// go-playground/validator.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator and returns it as [Validator].
func NewUserValidator() Validator {
	return &UserValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches on the dynamic type of obj. When fields are given only
// those fields are checked; otherwise every tagged field is.
//
// Each failing field is reported as its sentinel error (ErrInvalidName,
// ErrInvalidRole, ...); several failures are joined with errors.Join.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserForCreate:
		return v.validateStruct(ctx, value, fields...)
	case *models.UserForCreate:
		return v.validateStruct(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.DeleteRequest:
		return v.validateStruct(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if !slices.Contains(knownFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		sentinel, ok := fieldErrors[fe.StructField()]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: failed on %q", fe.StructField(), fe.Tag()))
			continue
		}
		errs = append(errs, fmt.Errorf("%w: failed on %q", sentinel, fe.Tag()))
	}

	return errors.Join(errs...)
}
