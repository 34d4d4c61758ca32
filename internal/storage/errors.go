package storage

import "errors"

// Common card store errors
var (
	// ErrCardNotFound indicates that no card exists with the given ID
	ErrCardNotFound = errors.New("card not found")
)
