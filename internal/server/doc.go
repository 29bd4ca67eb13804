// Package server runs the user directory HTTP server.
//
// It owns the listener lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown of in-flight requests.
package server
