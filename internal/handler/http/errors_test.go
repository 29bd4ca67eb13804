package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestError_ToClient(t *testing.T) {
	tests := []struct {
		kind        Kind
		wantStatus  int
		wantMessage string
	}{
		{KindDatabaseError, http.StatusInternalServerError, "Internal server error"},
		{KindHashFail, http.StatusInternalServerError, "Internal server error"},
		{KindNotFound, http.StatusNotFound, "Not found"},
		{KindCredentialNotMatch, http.StatusUnauthorized, "Credential not match"},
		{KindIDAlreadyUsed, http.StatusBadRequest, "Id already exist"},
		{KindUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
		{KindUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{KindInvalidInput, http.StatusBadRequest, "Invalid input"},
		{KindInternal, http.StatusInternalServerError, "Internal server error"},
		{Kind("SomethingNew"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			status, message := newError(tt.kind, nil).ToClient()
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	e := newError(KindDatabaseError, cause)
	assert.Equal(t, "DatabaseError: boom", e.Error())
	assert.ErrorIs(t, e, cause)

	assert.Equal(t, "Unauthorized", newError(KindUnauthorized, nil).Error())
}

func TestErrorFromService(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"row not found", fmt.Errorf("get: %w", store.ErrRowNotFound), KindNotFound},
		{"unique violation", fmt.Errorf("insert: %w", store.ErrUniqueConstraintViolation), KindIDAlreadyUsed},
		{"database", fmt.Errorf("%w: conn reset", store.ErrDatabase), KindDatabaseError},
		{"query building", store.ErrBuildingSQLQuery, KindDatabaseError},
		{"hash", fmt.Errorf("%w: cost", service.ErrHashFailed), KindHashFail},
		{"validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidName), KindInvalidInput},
		{"credentials", service.ErrCredentialNotMatch, KindCredentialNotMatch},
		{"token creation", service.ErrTokenCreationFailed, KindCredentialNotMatch},
		{"unknown", errors.New("unexpected"), KindDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := errorFromService(tt.err)
			assert.Equal(t, tt.want, e.Kind)
			assert.ErrorIs(t, e, tt.err)
		})
	}
}
