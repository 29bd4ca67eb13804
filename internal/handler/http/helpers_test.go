package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/mock"
	"github.com/MKhiriev/user-directory/internal/service"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEnv bundles a Handler wired to gomock services and a log buffer.
type testEnv struct {
	handler *Handler
	router  http.Handler
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	logs    *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	users := mock.NewMockUserService(ctrl)
	logs := &bytes.Buffer{}

	h := &Handler{
		services:         &service.Services{AuthService: auth, UserService: users},
		traceIDGenerator: utils.NewUUIDGenerator(),
		logger:           &logger.Logger{Logger: zerolog.New(logs)},
	}

	return &testEnv{
		handler: h,
		router:  h.Init(),
		auth:    auth,
		users:   users,
		logs:    logs,
	}
}

// asCaller makes bearer token resolve to user for the whole test.
func (e *testEnv) asCaller(token string, user models.User) {
	e.auth.EXPECT().ParseToken(gomock.Any(), token).Return(models.Token{UserID: user.ID}, nil).AnyTimes()
	e.users.EXPECT().GetUser(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
}

// do serves one request through the router. An empty token sends no
// Authorization header.
func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// logLines returns every JSON log line written so far.
func (e *testEnv) logLines(t *testing.T) []map[string]any {
	t.Helper()

	var lines []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(e.logs.Bytes()))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

// requestLine returns the single line the response mapper logged.
func (e *testEnv) requestLine(t *testing.T) map[string]any {
	t.Helper()

	var found []map[string]any
	for _, line := range e.logLines(t) {
		if _, ok := line["trace"]; ok {
			found = append(found, line)
		}
	}
	require.Len(t, found, 1, "expected exactly one request log line")
	return found[0]
}

// decodeEnvelope parses the response body and checks the envelope shape.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())
	require.Contains(t, envelope, "status")
	require.Contains(t, envelope, "code")

	switch envelope["status"] {
	case models.StatusSuccess:
		require.Contains(t, envelope, "data")
		require.NotContains(t, envelope, "message")
	case models.StatusError:
		require.Contains(t, envelope, "message")
		require.NotContains(t, envelope, "data")
	default:
		t.Fatalf("unexpected envelope status %v", envelope["status"])
	}
	return envelope
}

// requireErrorEnvelope checks status line, code and message of an error response.
func requireErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, models.StatusError, envelope["status"])
	require.EqualValues(t, code, envelope["code"])
	require.Equal(t, message, envelope["message"])
	require.Equal(t, code, rr.Code)
}
