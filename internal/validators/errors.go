package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID     = errors.New("invalid user ID")
	ErrInvalidName   = errors.New("name is required")
	ErrInvalidRole   = errors.New("invalid role")
	ErrEmptyPassword = errors.New("password is required")
)
