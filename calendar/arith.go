package calendar

import (
	"github.com/kalends-io/kalends/civil"
	"github.com/kalends-io/kalends/instant"
)

// Trim floors t to the start of the given unit (spec.md §4.6). Raw
// units floor on the UTC microsecond count directly; calendar units
// decompose to civil coordinates, zero the fields below the unit, and
// re-encode through Time, which reapplies DST.
func (cal Calendar) Trim(t instant.Instant, u Unit) instant.Instant {
	if u.Kind == UnitRaw {
		return instant.Floor(t, u.Raw)
	}
	if !t.IsValid() || t == instant.Max {
		return t
	}
	c := cal.CalendarUnits(t)
	if c.IsNull() {
		return t
	}
	switch u.Kind {
	case UnitYear:
		c.Month, c.Day, c.Hour, c.Minute, c.Second = 1, 1, 0, 0, 0
	case UnitQuarter:
		c.Month = ((c.Month-1)/3)*3 + 1
		c.Day, c.Hour, c.Minute, c.Second = 1, 0, 0, 0
	case UnitMonth:
		c.Day, c.Hour, c.Minute, c.Second = 1, 0, 0, 0
	case UnitWeek:
		_, _, wd := civil.ToISOWeek(c.Year, c.Month, c.Day)
		dn := civil.DayNumber(c.Year, c.Month, c.Day) - int64(wd-1)
		c.Year, c.Month, c.Day = civil.FromDayNumber(dn)
		c.Hour, c.Minute, c.Second = 0, 0, 0
	case UnitDay:
		c.Hour, c.Minute, c.Second = 0, 0, 0
	case UnitHour3:
		c.Hour = (c.Hour / 3) * 3
		c.Minute, c.Second = 0, 0
	}
	r, err := cal.Time(c)
	if err != nil {
		return t
	}
	return r
}

// Add adds n units of ΔT to t (spec.md §4.6). Raw units add directly
// on the UTC microsecond count; calendar units decompose to civil,
// add n to the relevant field with standard civil carry, and
// re-encode via resolve using the offset at t as the disambiguation
// candidate — the "if the UTC offset at result differs from the UTC
// offset at t by δ, subtract δ from result" correction spec.md §4.6
// describes, folded into resolve's single-approximation design.
func (cal Calendar) Add(t instant.Instant, u Unit, n int64) instant.Instant {
	if u.Kind == UnitRaw {
		return t.Add(instant.TimeSpan(n) * u.Raw)
	}
	if !t.IsValid() || t == instant.Max {
		return t
	}
	c := cal.CalendarUnits(t)
	if c.IsNull() {
		return t
	}
	c2 := addCivilField(c, u.Kind, n)
	approx := cal.Zone.UTCOffset(t)
	return cal.resolve(c2, approx)
}

func addCivilField(c civil.YMDhms, kind UnitKind, n int64) civil.YMDhms {
	switch kind {
	case UnitYear:
		c.Year += int(n)
		clampDay(&c)
	case UnitQuarter:
		c = addMonths(c, n*3)
	case UnitMonth:
		c = addMonths(c, n)
	case UnitWeek:
		c = addDays(c, n*7)
	case UnitDay:
		c = addDays(c, n)
	case UnitHour3:
		c = addHours(c, n*3)
	}
	return c
}

func clampDay(c *civil.YMDhms) {
	if max := civil.DaysInMonth(c.Year, c.Month); c.Day > max {
		c.Day = max
	}
}

func addMonths(c civil.YMDhms, n int64) civil.YMDhms {
	total := int64(c.Month-1) + n
	c.Year += int(floorDiv(total, 12))
	c.Month = int(floorMod(total, 12)) + 1
	clampDay(&c)
	return c
}

func addDays(c civil.YMDhms, n int64) civil.YMDhms {
	dn := civil.DayNumber(c.Year, c.Month, c.Day) + n
	c.Year, c.Month, c.Day = civil.FromDayNumber(dn)
	return c
}

func addHours(c civil.YMDhms, n int64) civil.YMDhms {
	total := int64(c.Hour) + n
	c = addDays(c, floorDiv(total, 24))
	c.Hour = int(floorMod(total, 24))
	return c
}

// tailTuple orders a civil coordinate's sub-month (day, h, m, s) tail
// for the month-diff adjustment in DiffUnits.
func tailTuple(c civil.YMDhms) int64 {
	return int64(c.Day)*1_000_000 + int64(c.Hour)*10_000 + int64(c.Minute)*100 + int64(c.Second)
}

// DiffUnits returns the signed number of whole ΔT units between t1 and
// t2, and the remaining TimeSpan, such that
// Add(t1, ΔT, whole) + remainder == t2 exactly (spec.md §4.6,
// property 4).
func (cal Calendar) DiffUnits(t1, t2 instant.Instant, u Unit) (whole int64, remainder instant.TimeSpan) {
	if u.Kind == UnitRaw {
		diff := t2.Sub(t1)
		whole = int64(diff) / int64(u.Raw)
		remainder = diff - instant.TimeSpan(whole)*u.Raw
		return whole, remainder
	}

	c1 := cal.CalendarUnits(t1)
	c2 := cal.CalendarUnits(t2)

	switch u.Kind {
	case UnitWeek, UnitDay:
		dn1 := civil.DayNumber(c1.Year, c1.Month, c1.Day)
		dn2 := civil.DayNumber(c2.Year, c2.Month, c2.Day)
		diffDays := dn2 - dn1
		if u.Kind == UnitWeek {
			whole = diffDays / 7
		} else {
			whole = diffDays
		}
	case UnitHour3:
		dn1 := civil.DayNumber(c1.Year, c1.Month, c1.Day)
		dn2 := civil.DayNumber(c2.Year, c2.Month, c2.Day)
		hours1 := dn1*24 + int64(c1.Hour)
		hours2 := dn2*24 + int64(c2.Hour)
		whole = (hours2 - hours1) / 3
	default: // UnitMonth, UnitQuarter, UnitYear
		monthsPerUnit := int64(1)
		if u.Kind == UnitQuarter {
			monthsPerUnit = 3
		} else if u.Kind == UnitYear {
			monthsPerUnit = 12
		}
		m1 := int64(c1.Year)*12 + int64(c1.Month-1)
		m2 := int64(c2.Year)*12 + int64(c2.Month-1)
		monthsDiff := m2 - m1
		if monthsDiff > 0 && tailTuple(c2) < tailTuple(c1) {
			monthsDiff--
		} else if monthsDiff < 0 && tailTuple(c2) > tailTuple(c1) {
			monthsDiff++
		}
		whole = monthsDiff / monthsPerUnit
	}

	added := cal.Add(t1, u, whole)
	remainder = t2.Sub(added)
	return whole, remainder
}
