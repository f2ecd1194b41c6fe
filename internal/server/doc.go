// Package server wires and runs the landing page's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a fixed drain timeout.
package server
