package calendar

import "errors"

// ErrParse is returned by ParseISO8601 when its input is malformed
// (spec.md §7 ParseError).
var ErrParse = errors.New("calendar: malformed ISO-8601 string")

// ErrInvalidInstant is the error kind for an operation given NONE where
// it needs a valid instant (spec.md §7 InvalidInstant). No function in
// this package returns it: the accessors (Month, Quarter, DayOfYear,
// DayOfWeek) follow spec.md §4.5 and return the sentinel -1 for NONE,
// and Trim/Add with a calendar unit return NONE unchanged.
var ErrInvalidInstant = errors.New("calendar: invalid instant")
