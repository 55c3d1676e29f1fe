package handler

import "errors"

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrPanicRecovered wraps the value of a panic caught by Recoverer
	ErrPanicRecovered = errors.New("panic recovered")
)
