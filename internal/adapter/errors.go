package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrCredentialNotMatch  = errors.New("credential not match")
	ErrNotFound            = errors.New("user not found")
	ErrIDAlreadyExists     = errors.New("id already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)

// APIError is an error envelope returned by the server.
type APIError struct {
	Code    int
	Message string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// Unwrap exposes the sentinel matching the envelope message, if any.
func (e *APIError) Unwrap() error {
	return e.kind
}
