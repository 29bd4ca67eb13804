// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing messages of the user directory API.
//
// The server writes them into the "message" field of error envelopes and the
// client adapter maps them back to sentinel errors, so both sides share this
// single table.
package app

const (
	// MsgInternalServerError covers database, hashing and any unexpected
	// server-side failure.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is returned when the requested user, route or method does
	// not exist.
	MsgNotFound = "Not found"

	// MsgCredentialNotMatch is returned by login for an unknown id or a wrong
	// password alike.
	MsgCredentialNotMatch = "Credential not match"

	// MsgIDAlreadyExist is returned when an insert or update collides with
	// an existing id.
	MsgIDAlreadyExist = "Id already exist"

	// MsgUnauthorized is returned when the caller is anonymous or lacks the
	// role a route requires.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidInput is returned for malformed bodies, bad path ids and
	// payloads failing validation.
	MsgInvalidInput = "Invalid input"
)
