package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/user-directory/internal/reqctx"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMapResponse_SuccessPassesThrough(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)

	rr := env.do(http.MethodGet, "/users", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","code":200,"data":[]}`, rr.Body.String())

	line := env.requestLine(t)
	assert.Equal(t, "auth_resolver -> get_all_users -> response_mapper", line["trace"])
	assert.Equal(t, "/users", line["uri"])
	assert.Equal(t, "GET", line["method"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "info", line["level"])
	assert.NotContains(t, line, "error")
	assert.NotContains(t, line, "user_id")
	assert.Contains(t, line, "duration")
	assert.Equal(t, map[string]any{"status": "success", "code": float64(200), "data": []any{}}, line["response"])
}

func TestMapResponse_ErrorRewritesBodyAndStatus(t *testing.T) {
	env := newTestEnv(t)
	env.asCaller("user-token", testRegular)

	rr := env.do(http.MethodPost, "/users", `{"name":"x","role":"User","password":"p"}`, "user-token")

	requireErrorEnvelope(t, rr, http.StatusUnauthorized, "Unauthorized")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	line := env.requestLine(t)
	assert.Equal(t, "auth_resolver -> admin_only -> response_mapper", line["trace"])
	assert.Equal(t, "Unauthorized", line["error"])
	assert.EqualValues(t, testRegular.ID, line["user_id"])
	assert.EqualValues(t, 401, line["status"])
	assert.Equal(t, "warn", line["level"])
}

func TestMapResponse_ServerErrorsLogAtErrorLevel(t *testing.T) {
	env := newTestEnv(t)
	env.users.EXPECT().ListUsers(gomock.Any()).Return(nil, assert.AnError)

	rr := env.do(http.MethodGet, "/users", "", "")

	requireErrorEnvelope(t, rr, http.StatusInternalServerError, "Internal server error")
	line := env.requestLine(t)
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "DatabaseError", line["error"])
	assert.Contains(t, line, "cause")
}

func TestMapResponse_MissingCtxIsInternal(t *testing.T) {
	env := newTestEnv(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok(w, "never shown")
	})
	rr := httptest.NewRecorder()
	env.handler.mapResponse(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	requireErrorEnvelope(t, rr, http.StatusInternalServerError, "Internal server error")
}

func TestMapResponse_PanicBecomesInternalEnvelope(t *testing.T) {
	env := newTestEnv(t)

	var seen *reqctx.Ctx
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = reqctx.FromRequest(r)
		panic("boom")
	})

	handler := env.handler.resolveAuth(env.handler.mapResponse(middleware.Recoverer(next)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	requireErrorEnvelope(t, rr, http.StatusInternalServerError, "Internal server error")
	require.NotNil(t, seen)
	assert.Equal(t, "auth_resolver -> response_mapper", seen.Trace())
}
