// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the user directory HTTP API.
//
// [ServerAdapter] hides the transport from callers. Error envelopes are
// returned as *[APIError], which unwraps to the sentinel matching the
// envelope message (e.g. [ErrNotFound] for "Not found"), so callers can use
// [errors.Is] without inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the user directory server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// ListUsers returns every user in the directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id int32) (models.User, error)

	// CreateUser inserts a user. Requires an Admin token.
	CreateUser(ctx context.Context, user models.UserForCreate) (models.User, error)

	// UpdateUser replaces the name, role and password of user id. Requires
	// the token of that user or of an Admin.
	UpdateUser(ctx context.Context, id int32, user models.UserForCreate) (models.User, error)

	// DeleteUser removes user id. Requires an Admin token.
	DeleteUser(ctx context.Context, id int32) error
}
