package server

// Server runs the user directory HTTP listener.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down and returns once in-flight requests have finished.
	RunServer()

	// Shutdown stops accepting connections and waits up to shutdownTimeout
	// for in-flight requests.
	Shutdown()
}
