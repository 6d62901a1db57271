package server

// Server defines the lifecycle contract of the local API server.
type Server interface {
	// RunServer serves requests and blocks until a termination signal is
	// received, then shuts down gracefully.
	RunServer()

	// Start serves requests in the background and returns immediately.
	Start()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
