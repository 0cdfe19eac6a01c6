package calendar

import (
	"fmt"

	"github.com/kalends-io/kalends/instant"
)

// UnitKind distinguishes a calendar-aware span (whose length in
// microseconds depends on civil context) from a raw duration.
type UnitKind int

const (
	UnitRaw UnitKind = iota
	UnitYear
	UnitQuarter
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour3
)

// Unit is a tagged variant of the source's magic-TimeSpan calendar
// units (spec.md §9 "Calendar-unit sentinels"): either one of the six
// calendar spans (Year, Quarter, Month, Week, Day, Hour3) or a raw
// instant.TimeSpan duration.
type Unit struct {
	Kind UnitKind
	Raw  instant.TimeSpan // meaningful only when Kind == UnitRaw
}

// Sentinel magnitudes for the three variable-length calendar units,
// chosen far outside the range any plausible raw duration would use,
// so that Magnitude() still round-trips through a distinguishable
// numeric value as spec.md §9 asks for.
const (
	yearMagic    instant.TimeSpan = -(1 << 61) - 1
	quarterMagic instant.TimeSpan = -(1 << 61) - 2
	monthMagic   instant.TimeSpan = -(1 << 61) - 3
)

var (
	// Year, Quarter, and Month are variable-length: their duration in
	// microseconds depends on which civil year/month they fall in.
	Year    = Unit{Kind: UnitYear}
	Quarter = Unit{Kind: UnitQuarter}
	Month   = Unit{Kind: UnitMonth}

	// Week, Day, and Hour3 are calendar-aware but fixed-length; their
	// Magnitude coincides with the matching instant package constant.
	Week  = Unit{Kind: UnitWeek}
	Day   = Unit{Kind: UnitDay}
	Hour3 = Unit{Kind: UnitHour3}
)

// RawUnit wraps a plain duration as a non-calendar Unit: Trim/Add/DiffUnits
// treat it as UTC-microsecond arithmetic with no civil decomposition.
func RawUnit(d instant.TimeSpan) Unit {
	return Unit{Kind: UnitRaw, Raw: d}
}

// IsCalendar reports whether u requires civil decomposition (as
// opposed to plain UTC-microsecond arithmetic).
func (u Unit) IsCalendar() bool {
	return u.Kind != UnitRaw
}

// Magnitude returns u's duration or sentinel TimeSpan value, per
// spec.md §6's "numeric constants exposed publicly" and §9's note that
// the fixed-length calendar units must round-trip through the existing
// instant.Week/Day/Hour3 constants.
func (u Unit) Magnitude() instant.TimeSpan {
	switch u.Kind {
	case UnitYear:
		return yearMagic
	case UnitQuarter:
		return quarterMagic
	case UnitMonth:
		return monthMagic
	case UnitWeek:
		return instant.Week
	case UnitDay:
		return instant.Day
	case UnitHour3:
		return instant.Hour3
	default:
		return u.Raw
	}
}

func (u Unit) String() string {
	switch u.Kind {
	case UnitYear:
		return "YEAR"
	case UnitQuarter:
		return "QUARTER"
	case UnitMonth:
		return "MONTH"
	case UnitWeek:
		return "WEEK"
	case UnitDay:
		return "DAY"
	case UnitHour3:
		return "HOUR_3"
	default:
		return fmt.Sprintf("%dus", int64(u.Raw))
	}
}
