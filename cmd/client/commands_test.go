package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/user-directory/internal/adapter"
	"github.com/MKhiriev/user-directory/internal/mock"
	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockAdapter(t *testing.T) *mock.MockServerAdapter {
	t.Helper()
	return mock.NewMockServerAdapter(gomock.NewController(t))
}

// ── argument handling ──

func TestRun_NoArgs(t *testing.T) {
	err := run(context.Background(), newMockAdapter(t), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), newMockAdapter(t), []string{"purge"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_WrongArity(t *testing.T) {
	err := run(context.Background(), newMockAdapter(t), []string{"get"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get <id>")
}

func TestRun_InvalidID(t *testing.T) {
	err := run(context.Background(), newMockAdapter(t), []string{"get", "abc"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid id "abc"`)

	err = run(context.Background(), newMockAdapter(t), []string{"delete", "99999999999"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid id")
}

// ── commands ──

func TestRun_Login(t *testing.T) {
	a := newMockAdapter(t)
	a.EXPECT().Login(gomock.Any(), models.Credentials{ID: 1, Password: "a"}).Return("signed", nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), a, []string{"login", "1", "a"}, &out))
	assert.Equal(t, "\"signed\"\n", out.String())
}

func TestRun_List(t *testing.T) {
	a := newMockAdapter(t)
	a.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: 1, Name: "admin", Role: models.RoleAdmin}}, nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), a, []string{"list"}, &out))
	assert.JSONEq(t, `[{"id":1,"name":"admin","role":"Admin"}]`, out.String())
}

func TestRun_CreateAndUpdate(t *testing.T) {
	a := newMockAdapter(t)
	payload := models.UserForCreate{ID: 3, Name: "carol", Role: models.RoleUser, Password: "c"}
	gomock.InOrder(
		a.EXPECT().CreateUser(gomock.Any(), payload).Return(models.User{ID: 3, Name: "carol", Role: models.RoleUser}, nil),
		a.EXPECT().UpdateUser(gomock.Any(), int32(3), payload).Return(models.User{ID: 3, Name: "carol", Role: models.RoleUser}, nil),
	)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), a, []string{"create", "3", "carol", "User", "c"}, &out))
	assert.JSONEq(t, `{"id":3,"name":"carol","role":"User"}`, out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), a, []string{"update", "3", "carol", "User", "c"}, &out))
	assert.JSONEq(t, `{"id":3,"name":"carol","role":"User"}`, out.String())
}

func TestRun_DeletePropagatesAPIError(t *testing.T) {
	a := newMockAdapter(t)
	a.EXPECT().DeleteUser(gomock.Any(), int32(2)).Return(adapter.ErrUnauthorized)

	var out bytes.Buffer
	err := run(context.Background(), a, []string{"delete", "2"}, &out)

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}
