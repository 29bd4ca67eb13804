// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reqctx holds the per-request context object shared by the HTTP
// middleware chain and handlers.
//
// A [Ctx] is created once per request by the auth resolver and attached to
// the request's context.Context. It carries the resolved [models.User] (nil
// for anonymous callers) and an append-only trace of the pipeline steps the
// request passed through. The trace is guarded by a mutex so the object may
// be shared freely between goroutines serving the same request.
package reqctx

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// ErrNoCtx is returned by [FromContext] when no [Ctx] was attached.
var ErrNoCtx = errors.New("request context is missing")

// Ctx is the per-request state. The zero value is not usable, use [New].
type Ctx struct {
	user *models.User

	mu    sync.Mutex
	trace strings.Builder
}

// New returns an anonymous Ctx with an empty trace.
func New() *Ctx {
	return &Ctx{}
}

// SetUser records the authenticated caller. A nil user keeps the request anonymous.
func (c *Ctx) SetUser(user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
}

// User returns the authenticated caller, or nil for anonymous requests.
func (c *Ctx) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// UserID returns the caller's id and true, or 0 and false when anonymous.
func (c *Ctx) UserID() (int32, bool) {
	u := c.User()
	if u == nil {
		return 0, false
	}
	return u.ID, true
}

// PushTrace appends segment verbatim to the trace.
func (c *Ctx) PushTrace(segment string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trace.WriteString(segment)
}

// Trace returns a snapshot of the accumulated trace.
func (c *Ctx) Trace() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace.String()
}

// WithCtx returns a copy of ctx carrying c.
func WithCtx(ctx context.Context, c *Ctx) context.Context {
	return context.WithValue(ctx, utils.RequestCtxKey, c)
}

// FromContext extracts the Ctx attached by [WithCtx].
func FromContext(ctx context.Context) (*Ctx, error) {
	c, ok := ctx.Value(utils.RequestCtxKey).(*Ctx)
	if !ok || c == nil {
		return nil, ErrNoCtx
	}
	return c, nil
}

// FromRequest is a shorthand for FromContext(r.Context()).
func FromRequest(r *http.Request) (*Ctx, error) {
	return FromContext(r.Context())
}
