package server

// Server is the lifecycle of the project API process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then drains
	// in-flight requests. It returns an error only when listening fails.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests up to the shutdown timeout.
	Shutdown()
}
