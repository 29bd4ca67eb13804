// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for type-safe context keys, HTTP response writing,
// HTTP client initialization, JWT token generation and validation,
// and trace identifier generation.
package utils

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestCtxKey is the key under which the per-request context object
// is stored in context.Context.
var RequestCtxKey = contextKey("requestCtx")
