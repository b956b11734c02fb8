// Package server runs the HTTP transport of the project API.
//
// It owns the http.Server timeouts, stop-signal handling and graceful
// shutdown.
package server
