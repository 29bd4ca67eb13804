package http

import (
	"errors"

	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/store"
)

// errorKinds is checked in order; the first target matched by errors.Is wins.
var errorKinds = []struct {
	target error
	kind   Kind
}{
	{service.ErrInvalidDataProvided, KindInvalidInput},
	{service.ErrHashFailed, KindHashFail},
	{service.ErrCredentialNotMatch, KindCredentialNotMatch},
	{service.ErrTokenCreationFailed, KindCredentialNotMatch},

	{store.ErrRowNotFound, KindNotFound},
	{store.ErrUniqueConstraintViolation, KindIDAlreadyUsed},
	{store.ErrDatabase, KindDatabaseError},
	{store.ErrBuildingSQLQuery, KindDatabaseError},
}

// errorFromService converts an error of the service layer into an *Error.
// Errors that match nothing collapse to DatabaseError.
func errorFromService(err error) *Error {
	for _, m := range errorKinds {
		if errors.Is(err, m.target) {
			return newError(m.kind, err)
		}
	}
	return newError(KindDatabaseError, err)
}
