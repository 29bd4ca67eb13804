// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/user-directory/internal/reqctx"
	"github.com/MKhiriev/user-directory/models"
)

// guard builds a middleware that appends " -> "+name to the trace and lets
// the request through when allow returns nil. Otherwise the returned error is
// attached to the response and the handler is skipped.
func guard(name string, allow func(c *reqctx.Ctx) *Error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := reqctx.FromRequest(r)
			if err != nil {
				fail(w, newError(KindInternal, err))
				return
			}
			c.PushTrace(" -> " + name)

			if e := allow(c); e != nil {
				fail(w, e)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// authenticatedOnly passes any resolved caller and fails anonymous requests
// with Unauthenticated.
var authenticatedOnly = guard("authenticated_only", func(c *reqctx.Ctx) *Error {
	if c.User() == nil {
		return newError(KindUnauthenticated, nil)
	}
	return nil
})

// adminOnly passes callers with the Admin role. Everyone else, anonymous
// callers included, fails with Unauthorized.
var adminOnly = requireRole("admin_only", models.RoleAdmin)

// userOnly passes callers with the User role.
var userOnly = requireRole("user_only", models.RoleUser)

func requireRole(name string, role models.Role) func(http.Handler) http.Handler {
	return guard(name, func(c *reqctx.Ctx) *Error {
		user := c.User()
		if user == nil || user.Role != role {
			return newError(KindUnauthorized, nil)
		}
		return nil
	})
}
