package tz

// NewTzInfoFromPosix builds a TzInfo by parsing and evaluating a
// POSIX TZ string over the canonical [startYear, startYear+nYears)
// window, per spec.md §4.4's add_tz_info.
func NewTzInfoFromPosix(posix string, startYear, nYears int) (TzInfo, error) {
	rule, err := ParsePosixRule(posix)
	if err != nil {
		return TzInfo{}, err
	}
	if !rule.HasDST() {
		// A dst-less table is always named "UTC±HH" regardless of
		// how it was constructed (spec.md §3's invariant on TzTable).
		return TzInfo{BaseOffset: rule.BaseOffset(), Table: NewFixedTzTable(rule.BaseOffset())}, nil
	}
	return TzInfo{
		BaseOffset: rule.BaseOffset(),
		Table:      NewTzTableFromProvider(rule, startYear, nYears),
	}, nil
}
