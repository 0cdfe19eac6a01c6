package tz

import "github.com/kalends-io/kalends/instant"

// TzInfo pairs a base UTC offset with the TzTable that describes when
// and by how much a DST adjustment is added on top of it.
// TzInfo is immutable after construction and is designed to be shared
// by value-handle across multiple Calendars and goroutines (spec.md
// §5): nothing here mutates a *TzTable once built.
type TzInfo struct {
	BaseOffset instant.TimeSpan
	Table      *TzTable
}

// UTCOffset returns base_offset + table.dst_offset(t), the total
// offset in effect at instant t, per spec.md §4.4.
func (z TzInfo) UTCOffset(t instant.Instant) instant.TimeSpan {
	return z.BaseOffset + z.Table.DSTOffset(t)
}

// IsDST reports whether DST is in effect at t.
func (z TzInfo) IsDST(t instant.Instant) bool {
	return z.Table.DSTOffset(t) != 0
}

// Name returns the underlying table's display name.
func (z TzInfo) Name() string { return z.Table.Name() }

// Fingerprint returns a content hash over z's base offset and table;
// equivalent zones hash equal.
func (z TzInfo) Fingerprint() (lo, hi uint64) {
	tlo, thi := z.Table.Fingerprint()
	buf := appendInt64(nil, int64(z.BaseOffset))
	buf = appendInt64(buf, int64(tlo))
	buf = appendInt64(buf, int64(thi))
	return fingerprintBytes(buf)
}
