package reqctx

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsAnonymous(t *testing.T) {
	c := New()

	assert.Nil(t, c.User())
	id, ok := c.UserID()
	assert.False(t, ok)
	assert.Zero(t, id)
	assert.Empty(t, c.Trace())
}

func TestCtx_SetUser(t *testing.T) {
	c := New()
	c.SetUser(&models.User{ID: 7, Name: "alice", Role: models.RoleAdmin})

	id, ok := c.UserID()
	require.True(t, ok)
	assert.Equal(t, int32(7), id)
	assert.Equal(t, models.RoleAdmin, c.User().Role)
}

func TestCtx_PushTrace_Concatenates(t *testing.T) {
	c := New()
	c.PushTrace("auth_resolver")
	c.PushTrace(" -> authenticated_only")
	c.PushTrace(" -> response_mapper")

	assert.Equal(t, "auth_resolver -> authenticated_only -> response_mapper", c.Trace())
}

func TestCtx_PushTrace_Concurrent(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.PushTrace("x")
		}()
	}
	wg.Wait()

	assert.Equal(t, strings.Repeat("x", 100), c.Trace())
}

func TestWithCtx_FromContext(t *testing.T) {
	c := New()
	ctx := WithCtx(context.Background(), c)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoCtx)
}

func TestFromRequest(t *testing.T) {
	c := New()
	r := httptest.NewRequest("GET", "/users", nil)
	r = r.WithContext(WithCtx(r.Context(), c))

	got, err := FromRequest(r)
	require.NoError(t, err)
	assert.Same(t, c, got)
}
