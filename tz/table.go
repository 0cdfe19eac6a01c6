// Package tz implements the time-zone model: a per-year DST table
// keyed by civil year (TzTable), the base-offset-plus-table pairing
// (TzInfo), and a region/short-name registry of TzInfo values
// (TzDatabase), loaded from a compiled-in snapshot or a text file.
package tz

import (
	"fmt"

	"github.com/dchest/siphash"
	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
)

// DefaultStartYear and DefaultYearCount bound the canonical window a
// TzTable covers when built from a rule provider or a POSIX string,
// per spec.md §4.3/§6.
const (
	DefaultStartYear = 1905
	DefaultYearCount = 200
)

// RuleProvider supplies the per-year DST transition instants and
// offset a TzTable is built from, plus the zone's display name.
// PosixRule is the concrete provider this package ships.
type RuleProvider interface {
	DSTStart(year int) instant.Instant
	DSTEnd(year int) instant.Instant
	DSTOffset(year int) instant.TimeSpan
	Name() string
}

// TzTable is a civil-year-indexed table of DST periods and their
// offsets, covering years [StartYear, StartYear+len(dst)).
type TzTable struct {
	name      string
	startYear int
	dst       []instant.Period
	dt        []instant.TimeSpan
}

// NewTzTableFromProvider builds a TzTable by evaluating p against
// each year in [startYear, startYear+nYears).
func NewTzTableFromProvider(p RuleProvider, startYear, nYears int) *TzTable {
	t := &TzTable{name: p.Name(), startYear: startYear}
	t.dst = make([]instant.Period, nYears)
	t.dt = make([]instant.TimeSpan, nYears)
	for i := 0; i < nYears; i++ {
		year := startYear + i
		t.dst[i] = instant.Period{Start: p.DSTStart(year), End: p.DSTEnd(year)}
		t.dt[i] = p.DSTOffset(year)
	}
	return t
}

// NewFixedTzTable builds a DST-less TzTable for a fixed offset dt.
// Its name is always "UTC±HH", a two-digit hour magnitude with a
// mandatory sign, per spec.md §4.3/§8 (scenario S8).
func NewFixedTzTable(dt instant.TimeSpan) *TzTable {
	return &TzTable{name: fixedOffsetName(dt)}
}

// NewDefaultTzTable returns the "UTC+00" table with no DST periods.
func NewDefaultTzTable() *TzTable {
	return &TzTable{name: "UTC+00"}
}

func fixedOffsetName(dt instant.TimeSpan) string {
	sign := "+"
	mag := int64(dt)
	if mag < 0 {
		sign = "-"
		mag = -mag
	}
	hours := mag / int64(instant.Hour)
	return fmt.Sprintf("UTC%s%02d", sign, hours)
}

// Name returns the table's display name.
func (t *TzTable) Name() string { return t.name }

// StartYear returns the first civil year the table covers.
func (t *TzTable) StartYear() int { return t.startYear }

// Len returns the number of civil years the table covers.
func (t *TzTable) Len() int { return len(t.dst) }

// IsDSTLess reports whether the table has no DST periods at all, in
// which case every instant's DST offset is zero and the table
// represents a fixed UTC±HH offset (spec.md §3).
func (t *TzTable) IsDSTLess() bool { return len(t.dst) == 0 }

// DSTOffset implements spec.md §4.3's lookup algorithm: zero if the
// table is DST-less or t's UTC civil year falls outside the table's
// window (the historical/future fallback spec.md §7's InvalidTable
// and §9's Open Question both describe as intentional, not an
// error), otherwise the configured offset if t falls within that
// year's DST period. The year used for the lookup is t's year read
// directly off the UTC timeline (utc_year(t) in spec.md §4.3), not a
// locally shifted year — the lookup never needs to know the offset it
// is about to compute.
func (t *TzTable) DSTOffset(tm instant.Instant) instant.TimeSpan {
	if t.IsDSTLess() {
		return 0
	}
	year := utcYear(tm)
	i := year - t.startYear
	if i < 0 || i >= len(t.dst) {
		return 0
	}
	p := t.dst[i]
	s, e := p.Start, p.End
	var inDST bool
	if s < e {
		inDST = s <= tm && tm < e
	} else {
		// Southern-hemisphere case: the DST period wraps through
		// the civil year boundary.
		inDST = tm < e || tm >= s
	}
	if !inDST {
		return 0
	}
	return t.dt[i]
}

// utcYear returns the civil year of t read directly off the UTC
// timeline (offset zero), the "y = utc_year(t)" step of spec.md
// §4.3's dst_offset algorithm.
func utcYear(t instant.Instant) int {
	days := floorDiv(int64(t), 86400_000_000)
	year, _, _ := civil.FromDayNumber(civil.UnixDay + days)
	return year
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// PeriodForYear returns the raw DST period configured for the given
// civil year, and whether the year falls within the table's window.
func (t *TzTable) PeriodForYear(year int) (instant.Period, bool) {
	i := year - t.startYear
	if t.IsDSTLess() || i < 0 || i >= len(t.dst) {
		return instant.Period{}, false
	}
	return t.dst[i], true
}

// Fingerprint returns a 128-bit SipHash content hash over the table's
// name and its offset/period data; tables built from equivalent rules
// hash equal. TzDatabase does not call it: each AddTzInfo call keeps
// its own TzInfo. Grounded on the
// SipHash-as-cache-key pattern in sneller's plan/input.go.
func (t *TzTable) Fingerprint() (lo, hi uint64) {
	buf := make([]byte, 0, 16+len(t.dst)*24)
	buf = append(buf, t.name...)
	buf = appendInt64(buf, int64(t.startYear))
	for i := range t.dst {
		buf = appendInt64(buf, int64(t.dst[i].Start))
		buf = appendInt64(buf, int64(t.dst[i].End))
		buf = appendInt64(buf, int64(t.dt[i]))
	}
	return siphash.Hash128(0, 0, buf)
}

func fingerprintBytes(buf []byte) (lo, hi uint64) {
	return siphash.Hash128(0, 0, buf)
}

func appendInt64(b []byte, v int64) []byte {
	return append(b,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}
