// Package db persists conversation turns and the usage counter in SQLite.
package db

import "errors"

// Sentinel errors for store operations. Use errors.Is() in calling code.
var (
	// ErrInvalidLimit indicates a non-positive result limit.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidDays indicates a non-positive retention window.
	ErrInvalidDays = errors.New("days must be positive")
)
