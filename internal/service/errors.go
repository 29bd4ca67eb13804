package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrCredentialNotMatch  = errors.New("credential not match")
	ErrHashFailed          = errors.New("password hashing failed")

	ErrTokenIsInvalid      = errors.New("token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
