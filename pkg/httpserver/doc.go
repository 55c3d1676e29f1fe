// Package httpserver runs the frostal HTTP handler with configurable
// timeouts, graceful shutdown on context cancellation or SIGINT/SIGTERM and
// a plain-text health check handler.
package httpserver
