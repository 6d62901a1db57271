// Package server runs the local JSON API.
//
// It owns the HTTP server lifecycle: startup, signal handling in headless
// mode and graceful shutdown.
package server
