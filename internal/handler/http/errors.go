// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/user-directory/internal/app"
)

// Kind names a client-visible failure. The value is also the "error" field
// of the request log line.
type Kind string

const (
	KindDatabaseError      Kind = "DatabaseError"
	KindHashFail           Kind = "HashFail"
	KindNotFound           Kind = "NotFound"
	KindCredentialNotMatch Kind = "CredentialNotMatch"
	KindIDAlreadyUsed      Kind = "IdAlreadyUsed"
	KindUnauthenticated    Kind = "Unauthenticated"
	KindUnauthorized       Kind = "Unauthorized"
	KindInvalidInput       Kind = "InvalidInput"
	KindInternal           Kind = "Internal"
)

// Error is the failure a handler or guard attaches to its response.
// Cause is only logged, never sent to the client.
type Error struct {
	Kind  Kind
	Cause error
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ToClient projects the error onto the HTTP status code and message of the
// error envelope. Unknown kinds are reported as internal errors.
func (e *Error) ToClient() (int, string) {
	switch e.Kind {
	case KindDatabaseError, KindHashFail, KindInternal:
		return http.StatusInternalServerError, app.MsgInternalServerError
	case KindNotFound:
		return http.StatusNotFound, app.MsgNotFound
	case KindCredentialNotMatch:
		return http.StatusUnauthorized, app.MsgCredentialNotMatch
	case KindIDAlreadyUsed:
		return http.StatusBadRequest, app.MsgIDAlreadyExist
	case KindUnauthenticated, KindUnauthorized:
		return http.StatusUnauthorized, app.MsgUnauthorized
	case KindInvalidInput:
		return http.StatusBadRequest, app.MsgInvalidInput
	default:
		return http.StatusInternalServerError, app.MsgInternalServerError
	}
}
