// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as both the NotFound and the
// MethodNotAllowed handler of router.
//
// Chi's default behaviour is to answer an unsupported method on a known path
// with 405 Method Not Allowed and a plain-text body. This handler answers
// both cases with the NotFound error envelope instead, hiding which paths
// exist from callers that use an unsupported method.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.NotFound(CheckHTTPMethod(router))
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cause := fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)

		rctx := chi.NewRouteContext()
		if router.Match(rctx, http.MethodGet, r.URL.Path) || router.Match(rctx, http.MethodPost, r.URL.Path) {
			cause = fmt.Errorf("method %s is not allowed on %s", r.Method, r.URL.Path)
		}

		fail(w, newError(KindNotFound, cause))
	}
}
