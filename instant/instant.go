// Package instant implements the linear-timeline algebra the rest of
// kalends is built on: a microsecond-resolution Instant, a signed
// TimeSpan, and the half-open Period interval between two instants.
//
// Everything here is a pure value computation on plain int64s; there
// is no I/O and no shared mutable state.
package instant

import "fmt"

// Instant is a signed count of microseconds since
// 1970-01-01T00:00:00 UTC.
type Instant int64

const (
	// Min is the smallest representable Instant.
	Min Instant = -1 << 63
	// Max is the largest representable Instant.
	Max Instant = 1<<63 - 1
	// None is the "absent" sentinel. It compares equal to Min; the
	// two are only distinguished contextually via IsValid.
	None Instant = Min
)

// IsValid reports whether t should be treated as a real instant
// rather than the absent sentinel. Because None == Min by
// construction, callers that need to tell the two apart must track
// validity alongside the value; IsValid exists for call sites that
// only care about "did this come from a None-producing operation".
func (t Instant) IsValid() bool {
	return t != None
}

// Add returns t shifted by d.
func (t Instant) Add(d TimeSpan) Instant {
	return t + Instant(d)
}

// Sub returns the TimeSpan between t and u, t-u.
func (t Instant) Sub(u Instant) TimeSpan {
	return TimeSpan(t - u)
}

// Before reports whether t is strictly earlier than u.
func (t Instant) Before(u Instant) bool { return t < u }

// After reports whether t is strictly later than u.
func (t Instant) After(u Instant) bool { return t > u }

// String renders t as a raw microsecond count, for debugging. Civil
// rendering lives in package calendar, which has a time zone to
// render against.
func (t Instant) String() string {
	switch t {
	case Max:
		return "+inf"
	case None:
		return "-inf"
	}
	return fmt.Sprintf("%dus", int64(t))
}

// TimeSpan is a signed count of microseconds; it may be negative.
type TimeSpan int64

// Calendar-unit magnitudes (spec §6). These are plain durations;
// package calendar additionally recognizes a distinct set of sentinel
// TimeSpan values (Year, Quarter, Month, Week, Day, Hour3) whose
// length in microseconds depends on civil context rather than being
// constant, but which must still round-trip through these numeric
// magnitudes where they coincide with a fixed-length unit.
const (
	Microsecond TimeSpan = 1
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
	Week                 = 7 * Day
	Hour3                = 3 * Hour
)

// Floor returns the greatest multiple of dt not exceeding t, computed
// on the raw microsecond count with truncated integer division
// corrected to floor division.
//
// If dt == 0, Floor returns t unchanged. If dt < 0, the "greatest
// multiple not exceeding t" construction runs in the opposite
// direction and Floor effectively behaves like a ceiling toward
// positive infinity; this sign-sensitive behavior is kept exactly as
// the original source describes it rather than rejecting negative dt,
// per the Open Question decision recorded in DESIGN.md.
func Floor(t Instant, dt TimeSpan) Instant {
	if dt == 0 {
		return t
	}
	q := int64(t) / int64(dt)
	r := int64(t) % int64(dt)
	if r != 0 && (int64(t) < 0) != (int64(dt) < 0) {
		q--
	}
	return Instant(q * int64(dt))
}

// Period is an ordered pair (Start, End) of instants with half-open
// semantics: Contains(t) iff Start <= t < End.
type Period struct {
	Start, End Instant
}

// Valid reports whether p's endpoints are both not None and
// Start <= End.
func (p Period) Valid() bool {
	return p.Start.IsValid() && p.End.IsValid() && p.Start <= p.End
}

// Contains reports whether t falls within the half-open interval
// [Start, End).
func (p Period) Contains(t Instant) bool {
	return p.Start <= t && t < p.End
}

// Span returns the length of p as a TimeSpan.
func (p Period) Span() TimeSpan {
	return p.End.Sub(p.Start)
}

// Overlaps reports whether p and q share any instant.
func (p Period) Overlaps(q Period) bool {
	return !(q.Start >= p.End || q.End <= p.Start)
}

// Intersection returns the overlap of p and q, or the invalid Period
// with both endpoints None if they do not overlap or either is invalid.
func Intersection(p, q Period) Period {
	if !p.Valid() || !q.Valid() || !p.Overlaps(q) {
		return Period{Start: None, End: None}
	}
	start := p.Start
	if q.Start > start {
		start = q.Start
	}
	end := p.End
	if q.End < end {
		end = q.End
	}
	return Period{Start: start, End: end}
}

// String renders p using half-open interval notation.
func (p Period) String() string {
	return fmt.Sprintf("[%s, %s>", p.Start, p.End)
}
