// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound user directory payloads before they reach
// the service layer.
//
// [NewUserValidator] validates models.UserForCreate and models.DeleteRequest
// with go-playground/validator struct tags. Every failing field is reported as
// its sentinel ([ErrInvalidID], [ErrInvalidName], [ErrInvalidRole] or
// [ErrEmptyPassword]) and the HTTP layer maps any of them to an
// "Invalid input" envelope.
package validators

import "context"

// Validator validates obj. When fields are given (see the Field* constants)
// only those struct fields are checked; an unknown name yields
// [ErrUnknownField] and an unsupported type [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
