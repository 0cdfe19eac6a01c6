package tz

import "errors"

// Error kinds surfaced by this package, matching spec.md §7.
var (
	// ErrNotFound is returned when a region or short-name lookup
	// fails in a TzDatabase.
	ErrNotFound = errors.New("tz: not found")
	// ErrParse is returned when a POSIX TZ string or text database
	// file is malformed.
	ErrParse = errors.New("tz: parse error")
)
